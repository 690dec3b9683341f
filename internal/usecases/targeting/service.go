package targeting

import (
	"strings"

	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

// SetTargetParams são os argumentos de uma operação de set-target. Campos
// opcionais nulos preservam os valores já gravados em uma atualização.
type SetTargetParams struct {
	SalesPerson    string
	Year           int
	Month          int
	TargetAmount   float64
	AssignmentType *domain.AssignmentType
	AssignedBy     *string
	Notes          *string
}

// TargetService é o contrato de leitura e escrita de metas mensais
type TargetService interface {
	// SetTarget cria ou atualiza a meta do vendedor para (year, month)
	SetTarget(params SetTargetParams) (*domain.SalesTarget, error)

	// GetTarget busca a meta pela chave exata; (nil, nil) quando não existe
	GetTarget(salesPerson string, year, month int) (*domain.SalesTarget, error)

	// ListTargets lista as metas do vendedor no ano, ordenadas por mês
	ListTargets(salesPerson string, year int) ([]*domain.SalesTarget, error)
}

type Service struct {
	targetRepository repository.SalesTargetRepository
}

func NewService(targetRepo repository.SalesTargetRepository) TargetService {
	return &Service{
		targetRepository: targetRepo,
	}
}

// SetTarget valida os argumentos antes de qualquer efeito e delega a escrita
// ao upsert atômico do repositório. Não há caminho ler-depois-gravar aqui:
// escritores concorrentes da mesma chave são serializados pelo banco.
func (s *Service) SetTarget(params SetTargetParams) (*domain.SalesTarget, error) {
	params.SalesPerson = strings.TrimSpace(params.SalesPerson)

	if err := validateKey(params.SalesPerson, params.Year, params.Month); err != nil {
		return nil, err
	}

	if params.TargetAmount < 0 {
		return nil, NewTargetError(ErrNegativeTargetAmount, "targetAmount", "")
	}

	if params.AssignmentType != nil {
		switch *params.AssignmentType {
		case domain.AssignmentManual, domain.AssignmentFormula, domain.AssignmentHistorical:
		default:
			return nil, NewTargetError(ErrInvalidAssignmentType, "assignmentType", string(*params.AssignmentType))
		}
	}

	target, err := s.targetRepository.Upsert(repository.TargetUpsert{
		SalesPerson:    params.SalesPerson,
		Year:           params.Year,
		Month:          params.Month,
		TargetAmount:   params.TargetAmount,
		AssignmentType: params.AssignmentType,
		AssignedBy:     params.AssignedBy,
		Notes:          params.Notes,
	})
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"sales_person": params.SalesPerson,
			"year":         params.Year,
			"month":        params.Month,
		}).Error("targeting: erro ao gravar meta")
		return nil, NewTargetError(ErrStorageUnavailable, "", err.Error())
	}

	return target, nil
}

func (s *Service) GetTarget(salesPerson string, year, month int) (*domain.SalesTarget, error) {
	salesPerson = strings.TrimSpace(salesPerson)

	if err := validateKey(salesPerson, year, month); err != nil {
		return nil, err
	}

	target, err := s.targetRepository.GetByKey(salesPerson, year, month)
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"sales_person": salesPerson,
			"year":         year,
			"month":        month,
		}).Error("targeting: erro ao buscar meta")
		return nil, NewTargetError(ErrStorageUnavailable, "", err.Error())
	}

	// Ausência de meta não é erro; o chamador distingue pelo nil
	return target, nil
}

func (s *Service) ListTargets(salesPerson string, year int) ([]*domain.SalesTarget, error) {
	salesPerson = strings.TrimSpace(salesPerson)

	if salesPerson == "" {
		return nil, NewTargetError(ErrSalesPersonRequired, "salesPerson", "")
	}
	if year <= 0 {
		return nil, NewTargetError(ErrInvalidYear, "year", "")
	}

	targets, err := s.targetRepository.ListByYear(salesPerson, year)
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"sales_person": salesPerson,
			"year":         year,
		}).Error("targeting: erro ao listar metas")
		return nil, NewTargetError(ErrStorageUnavailable, "", err.Error())
	}

	return targets, nil
}

func validateKey(salesPerson string, year, month int) error {
	if salesPerson == "" {
		return NewTargetError(ErrSalesPersonRequired, "salesPerson", "")
	}
	if year <= 0 {
		return NewTargetError(ErrInvalidYear, "year", "")
	}
	if month < 1 || month > 12 {
		return NewTargetError(ErrInvalidMonth, "month", "")
	}
	return nil
}
