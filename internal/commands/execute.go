package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Mark   func(Type, MarkArgs) (Result, error)
	Week   func(WeekArgs) (Result, error)
	Save   func() (Result, error)
	Show   func(ShowArgs) (Result, error)
	Export func(ExportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeDone, TypePending, TypeToggle:
		if handlers.Mark == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", cmd.Type)}
		}
		return handlers.Mark(cmd.Type, *cmd.Mark)
	case TypeWeek:
		if handlers.Week == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "week handler not configured"}
		}
		return handlers.Week(*cmd.Week)
	case TypeSave:
		if handlers.Save == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "save handler not configured"}
		}
		return handlers.Save()
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "export handler not configured"}
		}
		return handlers.Export(*cmd.Export)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
