package schedule

import "context"

// LocalPusher writes schedule entries through the in-process service,
// skipping the HTTP hop when everything runs in one binary.
type LocalPusher struct {
	service Service
}

func NewLocalPusher(service Service) *LocalPusher {
	return &LocalPusher{service: service}
}

func (p *LocalPusher) Push(ctx context.Context, entry UpsertEntryRequest) error {
	_, err := p.service.Upsert(ctx, entry)
	return err
}
