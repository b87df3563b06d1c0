package procs

// Proc is one step of a process. Run returns the step to run next, or nil when done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// RunAll runs proc and its successors until one returns nil or fails.
func RunAll[C any](ctx C, proc Proc[C]) (err error) {
	for proc != nil {
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
