package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeDone    Type = "done"
	TypePending Type = "pending"
	TypeToggle  Type = "toggle"
	TypeWeek    Type = "week"
	TypeSave    Type = "save"
	TypeShow    Type = "show"
	TypeExport  Type = "export"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MarkArgs addresses one schedule row. Row is 1-based as typed by the user.
type MarkArgs struct {
	Row int
}

type WeekArgs struct {
	Week int
	Done bool
}

type ShowArgs struct {
	Subject string
}

type ExportArgs struct {
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Mark   *MarkArgs
	Week   *WeekArgs
	Show   *ShowArgs
	Export *ExportArgs
}

var showSubjects = map[string]string{
	"schedule":   "schedule",
	"cronograma": "schedule",
	"progress":   "progress",
	"progresso":  "progress",
	"charts":     "charts",
	"graficos":   "charts",
	"gráficos":   "charts",
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeDone, TypePending, TypeToggle:
		return parseMark(input, Type(head), args)
	case TypeWeek:
		return parseWeek(input, args)
	case TypeSave:
		return Command{Type: TypeSave, Raw: input}, nil
	case TypeShow:
		return parseShow(input, args)
	case TypeExport:
		return parseExport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseMark(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a row number", t)}
	}
	row, err := strconv.Atoi(args[0])
	if err != nil || row < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row: %s", args[0])}
	}
	return Command{Type: t, Raw: raw, Mark: &MarkArgs{Row: row}}, nil
}

func parseWeek(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "week requires a number and done|pending"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid week: %s", args[0])}
	}
	var done bool
	switch strings.ToLower(args[1]) {
	case "done", "concluido", "concluído":
		done = true
	case "pending", "pendente":
		done = false
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid status: %s", args[1])}
	}
	return Command{Type: TypeWeek, Raw: raw, Week: &WeekArgs{Week: n, Done: done}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject, ok := showSubjects[strings.ToLower(args[0])]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", args[0])}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a file path"}
	}
	path := strings.TrimSpace(strings.Join(args, " "))
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export path must end in .xlsx"}
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Path: path}}, nil
}
