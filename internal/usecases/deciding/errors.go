package deciding

import (
	"errors"
	"fmt"
)

// ErrorKind classifica as falhas terminais do contrato de decisão. Todas
// abortam a montagem antes de qualquer chamada de escrita à plataforma
type ErrorKind string

const (
	ErrMalformedResponse      ErrorKind = "MalformedResponse"
	ErrDecisionRejected       ErrorKind = "DecisionRejected"
	ErrInvalidActionType      ErrorKind = "InvalidActionType"
	ErrInvalidActionStructure ErrorKind = "InvalidActionStructure"
	ErrNoCreativesSelected    ErrorKind = "NoCreativesSelected"
	ErrBudgetTooLow           ErrorKind = "BudgetTooLow"
)

// PlanError é a falha tipada da validação do plano
type PlanError struct {
	Kind        ErrorKind
	Message     string
	Suggestions []string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newPlanError(kind ErrorKind, format string, args ...interface{}) *PlanError {
	return &PlanError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsKind verifica se err é um PlanError do tipo informado
func IsKind(err error, kind ErrorKind) bool {
	var planErr *PlanError
	if !errors.As(err, &planErr) {
		return false
	}
	return planErr.Kind == kind
}

// AsPlanError extrai o PlanError de err, se houver
func AsPlanError(err error) (*PlanError, bool) {
	var planErr *PlanError
	ok := errors.As(err, &planErr)
	return planErr, ok
}
