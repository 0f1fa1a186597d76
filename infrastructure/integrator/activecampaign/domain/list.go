package acdomain

type List struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	CDate           string     `json:"cdate"`
	SubscriberCount FlexString `json:"subscriber_count"`
	Raw             []byte     `json:"-"`
}
