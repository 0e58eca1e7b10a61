package view

// Status is the lifecycle of a screenful of server data.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusReady    Status = "ready"
	StatusError    Status = "error"
	StatusNotFound Status = "notFound"
)

// ApplyOptimistic writes next through the setter immediately, submits the
// change, and restores the previous value when the submit fails. The caller
// sees the failure as the returned error.
func ApplyOptimistic[T any](read func() T, write func(T), next T, submit func() error) error {
	prev := read()
	write(next)
	if err := submit(); err != nil {
		write(prev)
		return err
	}
	return nil
}
