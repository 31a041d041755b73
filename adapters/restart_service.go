package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"mysupervisor/domain"
	"mysupervisor/helpers"
	"mysupervisor/interfaces"
)

// RestartServiceHTTP creates an interfaces.RestartService that asks an external process manager to restart an instance:
// POST baseURL/v1/restart/{class}/{key}, where key is the shard index for bot shards and the instance id otherwise.
// Panics on empty baseURL or nil client.
//
// Called from cmd/main when USE_RESTART_SERVICE is enabled.
func RestartServiceHTTP(baseURL string, client *http.Client) interfaces.RestartService {
	return &restartServiceHTTP{
		baseURL: helpers.StrPanic(baseURL, "adapters.restart_service.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.restart_service.go: http client is required"),
	}
}

type restartServiceHTTP struct {
	baseURL string
	client  *http.Client
}

// restartResponse is the optional JSON body of the restart answer: { "detail": "..." }.
type restartResponse struct {
	Detail string `json:"detail"`
}

// Restart performs the restart request.
//
// Returns: (Restarted=true, nil) on 200; (Restarted=false, nil) on 404 (unknown instance) or 409 (restart refused);
// (zero, error) on any other status or transport error.
func (r *restartServiceHTTP) Restart(ctx context.Context, record domain.InstanceRecord) (domain.RestartOutcome, error) {
	reqURL := r.baseURL + restartPath(record)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return domain.RestartOutcome{}, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return domain.RestartOutcome{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return domain.RestartOutcome{}, err
	}
	var parsed restartResponse
	// Body is informational; an unparsable body is not an error.
	_ = json.Unmarshal(body, &parsed)

	switch resp.StatusCode {
	case http.StatusOK:
		return domain.RestartOutcome{Restarted: true, Detail: parsed.Detail}, nil
	case http.StatusNotFound, http.StatusConflict:
		detail := parsed.Detail
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return domain.RestartOutcome{Restarted: false, Detail: detail}, nil
	default:
		return domain.RestartOutcome{}, fmt.Errorf("restart service returned %d", resp.StatusCode)
	}
}

func restartPath(record domain.InstanceRecord) string {
	key := record.InstanceID
	if record.Class == domain.ClassBotShard {
		key = strconv.Itoa(record.ShardIndex)
	}
	return "/v1/restart/" + url.PathEscape(string(record.Class)) + "/" + url.PathEscape(key)
}
