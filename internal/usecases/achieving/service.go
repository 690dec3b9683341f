package achieving

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/calendaring"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

// Erros específicos para o contexto de agregação de vendas
var (
	ErrSalesPersonRequired = errors.New("o identificador do vendedor é obrigatório")
	ErrLedgerUnavailable   = errors.New("ledger de pedidos indisponível")
)

// Achiever calcula o total de vendas de um vendedor em um mês a partir do
// ledger de pedidos. Pedidos cancelados nunca entram na soma.
type Achiever interface {
	GetAchievedSales(salesPerson string, year, month int, now time.Time) (float64, error)
}

// Service implementa Achiever lendo o ledger, com cache opcional dos totais
// de meses fechados mantido pela sincronização noturna.
type Service struct {
	orderRepository       repository.SalesOrderRepository
	achievementRepository repository.MonthlyAchievementRepository
	loc                   *time.Location
	useCache              bool
}

func NewService(orderRepo repository.SalesOrderRepository) *Service {
	return &Service{
		orderRepository: orderRepo,
		loc:             time.Local,
	}
}

// WithCache habilita a leitura dos consolidados mensais para meses fechados
func (s *Service) WithCache(achievementRepo repository.MonthlyAchievementRepository) *Service {
	s.achievementRepository = achievementRepo
	s.useCache = achievementRepo != nil
	return s
}

// GetAchievedSales soma os pedidos não cancelados do vendedor criados dentro
// do mês. O fuso de referência do serviço delimita o mês, o mesmo fuso usado
// pelo chamador para decidir o que é "hoje". Sem pedidos o total é zero.
//
// Meses fechados respondem pelo consolidado noturno quando disponível. Um
// cancelamento tardio em mês encerrado só aparece após a próxima
// consolidação; o mês corrente sempre soma direto do ledger.
func (s *Service) GetAchievedSales(salesPerson string, year, month int, now time.Time) (float64, error) {
	salesPerson = strings.TrimSpace(salesPerson)
	if salesPerson == "" {
		return 0, ErrSalesPersonRequired
	}

	start, end, err := calendaring.MonthBounds(year, month, s.loc)
	if err != nil {
		return 0, err
	}

	// Meses fechados podem ser respondidos pelo consolidado noturno
	if s.useCache && end.Before(now.In(s.loc)) {
		entry, err := s.achievementRepository.GetByKey(salesPerson, year, month)
		if err != nil {
			// Cache indisponível não interrompe a consulta, cai para o ledger
			log.L.WithError(err).WithFields(log.Fields{
				"sales_person": salesPerson,
				"year":         year,
				"month":        month,
			}).Warn("achieving: falha ao ler consolidado mensal, somando direto do ledger")
		} else if entry != nil {
			return entry.AchievedAmount, nil
		}
	}

	total, _, err := s.orderRepository.SumAmountByPeriod(salesPerson, start, end)
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"sales_person": salesPerson,
			"year":         year,
			"month":        month,
		}).Error("achieving: erro ao agregar pedidos")
		return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	return total, nil
}

// ConsolidateMonth recalcula e grava o consolidado de um mês a partir do
// ledger. Chamado pela sincronização noturna para meses já encerrados.
func (s *Service) ConsolidateMonth(salesPerson string, year, month int) (*domain.MonthlyAchievementEntry, error) {
	salesPerson = strings.TrimSpace(salesPerson)
	if salesPerson == "" {
		return nil, ErrSalesPersonRequired
	}

	if s.achievementRepository == nil {
		return nil, errors.New("repositório de consolidados não configurado")
	}

	start, end, err := calendaring.MonthBounds(year, month, s.loc)
	if err != nil {
		return nil, err
	}

	total, count, err := s.orderRepository.SumAmountByPeriod(salesPerson, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	entry := &domain.MonthlyAchievementEntry{
		SalesPerson:    salesPerson,
		Year:           year,
		Month:          month,
		AchievedAmount: total,
		OrdersCount:    count,
	}

	if err := s.achievementRepository.SaveOrUpdate(entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	return entry, nil
}
