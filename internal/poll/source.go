package poll

import (
	"context"

	"tramflux/internal/decode"
	"tramflux/internal/feed"
	"tramflux/internal/marker"
	"tramflux/internal/session"
)

// Source produces one cycle's worth of raw markers.
type Source interface {
	Fetch(ctx context.Context) ([]marker.Raw, error)
}

// Portal drives the session-bootstrapped portal: landing page, token
// extraction, token-authenticated data fetch, payload decode. Tokens are
// derived fresh on every call and never reused across cycles, failed or not.
type Portal struct {
	Client  *feed.Client
	Decoder decode.Decoder
}

func (p *Portal) Fetch(ctx context.Context) ([]marker.Raw, error) {
	body, err := p.Client.Landing(ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := session.Extract(body)
	if err != nil {
		return nil, err
	}
	payload, err := p.Client.Data(ctx, tokens)
	if err != nil {
		return nil, err
	}
	return p.Decoder.Decode([]byte(payload))
}

// Direct fetches an unauthenticated feed and decodes it; used by the
// GTFS-Realtime feed version, which has no session handshake.
type Direct struct {
	Client  *feed.Client
	Decoder decode.Decoder
}

func (d *Direct) Fetch(ctx context.Context) ([]marker.Raw, error) {
	payload, err := d.Client.Get(ctx)
	if err != nil {
		return nil, err
	}
	return d.Decoder.Decode([]byte(payload))
}
