package fetcher

import "fmt"

func errNotConnected(workerName string) error {
	return fmt.Errorf("fetcher: not connected with worker peer %s", workerName)
}
