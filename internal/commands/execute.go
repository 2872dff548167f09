package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Routine func(RoutineArgs) (Result, error)
	Reflect func(ReflectArgs) (Result, error)
	Sort    func(SortArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeRoutine:
		if handlers.Routine == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "routine handler not configured"}
		}
		return handlers.Routine(*cmd.Routine)
	case TypeReflect:
		if handlers.Reflect == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reflect handler not configured"}
		}
		return handlers.Reflect(*cmd.Reflect)
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sort handler not configured"}
		}
		return handlers.Sort(*cmd.Sort)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
