package dogs

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List nunca devuelve nil: un store vacío es una lista vacía.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]Summary, 0)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Dog, error) {
	return s.repo.GetByID(ctx, id)
}
