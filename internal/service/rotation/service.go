package rotation

import (
	"context"
	"fmt"
)

// Service очередь ротации мастеров: круговая справедливость автоназначения.
// Кто дольше всех не получал запись (или не получал никогда), тот
// пробуется первым.
type Service struct {
	queueRepo QueueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса ротации
func NewService(queueRepo QueueRepository, logger Logger) *Service {
	return &Service{
		queueRepo: queueRepo,
		logger:    logger,
	}
}

// CandidateOrder упорядочивает подходящих мастеров по справедливости:
// находящиеся в очереди сохраняют ее относительный порядок и идут первыми,
// отсутствующие в очереди ("новички") добавляются после - в том порядке,
// в котором переданы (стабильный порядок листинга).
func (s *Service) CandidateOrder(ctx context.Context, eligible []int64) ([]int64, error) {
	queued, err := s.queueRepo.List(ctx)
	if err != nil {
		s.logger.Error("CandidateOrder: failed to load staff queue: %v", err)
		return nil, fmt.Errorf("%w: CandidateOrder - load queue: %v", ErrInternal, err)
	}

	eligibleSet := make(map[int64]struct{}, len(eligible))
	for _, id := range eligible {
		eligibleSet[id] = struct{}{}
	}

	order := make([]int64, 0, len(eligible))
	inQueue := make(map[int64]struct{}, len(queued))

	for _, id := range queued {
		inQueue[id] = struct{}{}
		if _, ok := eligibleSet[id]; ok {
			order = append(order, id)
		}
	}

	for _, id := range eligible {
		if _, ok := inQueue[id]; !ok {
			order = append(order, id)
		}
	}

	return order, nil
}

// Requeue отмечает мастера как "назначенного последним": перемещает его
// в конец очереди. Вызывается ровно один раз на успешное автоназначение,
// в той же транзакции, что и запись.
func (s *Service) Requeue(ctx context.Context, staffID int64) error {
	if err := s.queueRepo.Requeue(ctx, staffID); err != nil {
		s.logger.Error("Requeue: failed to requeue staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: Requeue - staff=%d: %v", ErrInternal, staffID, err)
	}

	s.logger.Info("Requeue: staff=%d moved to the back of the rotation queue", staffID)
	return nil
}
