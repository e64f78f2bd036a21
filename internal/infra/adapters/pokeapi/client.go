package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pokeinfo-bot/internal/config"
	"pokeinfo-bot/internal/domain"
	"pokeinfo-bot/internal/domain/model"
	"pokeinfo-bot/internal/domain/ports/adapter"
	"pokeinfo-bot/internal/infra/logging"
	"pokeinfo-bot/internal/infra/metrics"

	"github.com/rs/zerolog"
)

var _ adapter.PokedexClient = (*Client)(nil)

const (
	endpointPokemon = "pokemon"
	endpointType    = "type"

	// upstream payloads are a few hundred KB at most
	maxBodyBytes = 8 << 20
)

// Client reads species and type records from PokeAPI over HTTP. It never retries.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       *zerolog.Logger
}

// NewClient builds a client from config. httpClient may be nil, in which case one with
// cfg.Timeout is created.
func NewClient(cfg config.PokeAPIConfig, httpClient *http.Client, logger *zerolog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = config.DefaultPokeAPIBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid pokeapi base url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		client:    httpClient,
		log:       logger,
	}, nil
}

type typePayload struct {
	ID              int                   `json:"id"`
	Name            string                `json:"name"`
	DamageRelations model.DamageRelations `json:"damage_relations"`
}

// GetPokemon fetches /pokemon/{name}/. The name is normalized first.
func (c *Client) GetPokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	defer logging.TraceDuration(c.log, "PokeAPI.GetPokemon")()

	id := NormalizeName(name)
	if id == "" {
		return nil, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}

	var p model.Pokemon
	if err := c.get(ctx, endpointPokemon, id, &p); err != nil {
		return nil, fmt.Errorf("pokemon %q: %w", id, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("pokemon %q: empty result: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// GetTypeRelations resolves the type behind ref.URL and returns its damage relations.
func (c *Client) GetTypeRelations(ctx context.Context, ref model.NamedResource) (*model.DamageRelations, error) {
	defer logging.TraceDuration(c.log, "PokeAPI.GetTypeRelations")()

	typeID, err := ParseTypeID(ref.URL)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", ref.Name, err)
	}

	var t typePayload
	if err := c.get(ctx, endpointType, strconv.Itoa(typeID), &t); err != nil {
		return nil, fmt.Errorf("type %q (id %d): %w", ref.Name, typeID, err)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("type %q (id %d): empty result: %w", ref.Name, typeID, domain.ErrNotFound)
	}
	return &t.DamageRelations, nil
}

func (c *Client) get(ctx context.Context, endpoint, key string, out any) (err error) {
	start := time.Now()
	result := "ok"
	defer func() {
		if err != nil {
			result = resultLabel(err)
		}
		metrics.ObservePokeAPICall(endpoint, result, time.Since(start))
	}()

	u := c.baseURL + "/" + endpoint + "/" + url.PathEscape(key) + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			c.log.Warn().Err(err).Str("endpoint", endpoint).Str("key", key).Msg("pokeapi request failed")
		}
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%w: http %d", domain.ErrTransport, resp.StatusCode)
	default:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%w: http %d", domain.ErrNotFound, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", domain.ErrTransport, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: empty body", domain.ErrNotFound)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}
	return nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTransport):
		return "transport"
	case errors.Is(err, domain.ErrDeserialization):
		return "decode"
	default:
		return "error"
	}
}
