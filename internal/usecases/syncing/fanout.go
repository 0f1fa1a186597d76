package syncing

import "sync"

// fanOut executa work(i) para cada índice com no máximo maxConcurrent goroutines
func (s *Service) fanOut(n int, work func(i int)) {
	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			work(i)
		}(i)
	}

	wg.Wait()
}
