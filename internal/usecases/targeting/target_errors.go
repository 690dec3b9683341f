package targeting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de metas de vendas
var (
	// Erros de validação
	ErrSalesPersonRequired   = errors.New("o identificador do vendedor é obrigatório")
	ErrInvalidYear           = errors.New("ano inválido")
	ErrInvalidMonth          = errors.New("mês inválido, informe um valor entre 1 e 12")
	ErrNegativeTargetAmount  = errors.New("o valor da meta não pode ser negativo")
	ErrInvalidAssignmentType = errors.New("tipo de atribuição inválido, use manual, formula ou historical")

	// Erros de banco de dados
	ErrStorageUnavailable = errors.New("armazenamento de metas indisponível")
)

// TargetError é um erro com contexto adicional para operações de meta
type TargetError struct {
	Err     error  // Erro base
	Field   string // Campo ofensor (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TargetError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSalesPersonRequired) ||
		errors.Is(err, ErrInvalidYear) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrNegativeTargetAmount) ||
		errors.Is(err, ErrInvalidAssignmentType)
}

// NewTargetError cria um novo TargetError
func NewTargetError(baseErr error, field string, details string) *TargetError {
	return &TargetError{
		Err:     baseErr,
		Field:   field,
		Details: details,
	}
}
