package events

import "context"

type StubPublisher struct {
	PublishFunc func(ctx context.Context, routingKey string, event OrderEvent) error
	CloseFunc   func() error

	Published []OrderEvent
	Keys      []string
}

var _ Publisher = (*StubPublisher)(nil)

func (p *StubPublisher) Publish(ctx context.Context, routingKey string, event OrderEvent) error {
	p.Published = append(p.Published, event)
	p.Keys = append(p.Keys, routingKey)
	if p.PublishFunc != nil {
		return p.PublishFunc(ctx, routingKey, event)
	}
	return nil
}

func (p *StubPublisher) Close() error {
	if p.CloseFunc != nil {
		return p.CloseFunc()
	}
	return nil
}
