package acdomain

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// FlexString aceita valores JSON em string, número ou booleano.
// A API devolve o mesmo campo em tipos diferentes conforme o plano da conta.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Int converte o valor, indicando se a conversão foi possível
func (f FlexString) Int() (int, bool) {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(fl) || math.IsInf(fl, 0) || fl >= math.MaxInt || fl < math.MinInt {
			return 0, false
		}
		return int(fl), true
	}
	return n, true
}

// Truthy trata "1" e "true" como verdadeiro
func (f FlexString) Truthy() bool {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "1", "true":
		return true
	}
	return false
}

func (c *Campaign) SetRaw(raw []byte)   { c.Raw = raw }
func (l *List) SetRaw(raw []byte)       { l.Raw = raw }
func (a *Automation) SetRaw(raw []byte) { a.Raw = raw }
func (m *Message) SetRaw(raw []byte)    { m.Raw = raw }
