package nameprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Amund211/wikistats/internal/domain"
	"github.com/Amund211/wikistats/internal/logging"
	"github.com/Amund211/wikistats/internal/strutils"
	"golang.org/x/time/rate"
)

const USER_AGENT = "wikistats/1.0 (+https://github.com/Amund211/wikistats)"

const MOJANG_PROFILE_URL = "https://sessionserver.mojang.com/session/minecraft/profile/%s"

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Looks up the current name of an account through the Mojang session server
type Mojang struct {
	httpClient HttpClient
	limiter    *rate.Limiter
	profileURL string
}

func NewMojang(httpClient HttpClient, limiter *rate.Limiter) *Mojang {
	return &Mojang{
		httpClient: httpClient,
		limiter:    limiter,
		profileURL: MOJANG_PROFILE_URL,
	}
}

func (m *Mojang) GetName(ctx context.Context, uuid string) (string, error) {
	strippedUUID, err := strutils.StripUUID(uuid)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNameNotFound, err)
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed waiting for mojang rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf(m.profileURL, strippedUUID), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	name, err := nameFromMojangResponse(resp.StatusCode, data)
	if err != nil {
		logging.FromContext(ctx).WarnContext(
			ctx,
			"Failed to get name from mojang",
			"error", err.Error(),
			"status", strconv.Itoa(resp.StatusCode),
		)
		return "", fmt.Errorf("failed to get name from mojang response: %w", err)
	}

	return name, nil
}

type mojangProfileResponse struct {
	UUID string `json:"id"`
	Name string `json:"name"`
}

func nameFromMojangResponse(statusCode int, data []byte) (string, error) {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return "", fmt.Errorf("%w: mojang API returned status code %d", domain.ErrTemporarilyUnavailable, statusCode)
	case http.StatusNotFound,
		http.StatusNoContent:
		return "", domain.ErrNameNotFound
	case http.StatusOK:
	default:
		return "", fmt.Errorf("mojang API returned unsupported status code %d", statusCode)
	}

	var response mojangProfileResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("failed to parse mojang response: %w", err)
	}

	if response.Name == "" {
		return "", fmt.Errorf("%w: mojang response has no name", domain.ErrNameNotFound)
	}

	return response.Name, nil
}
