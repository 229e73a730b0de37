package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AdoptionsCount(t *testing.T) {
	r := NewRegistry("pet-service")

	r.Adoptions.Record(OutcomeAdopted)
	r.Adoptions.Record(OutcomeAdopted)
	r.Adoptions.Record(OutcomeAlreadyAdopted)

	assert.Equal(t, 2.0, r.Adoptions.Count(OutcomeAdopted))
	assert.Equal(t, 1.0, r.Adoptions.Count(OutcomeAlreadyAdopted))
	assert.Equal(t, 0.0, r.Adoptions.Count(OutcomeUserNotFound))
}

func TestRegistry_HTTPObserve(t *testing.T) {
	r := NewRegistry("pet-service")
	r.HTTP.Observe("GET", "/pets", "200", 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.HTTP.requests.WithLabelValues("GET", "/pets", "200")))
}

func TestRegistry_HandlerExposesServiceLabel(t *testing.T) {
	r := NewRegistry("user-service")
	r.HTTP.Observe("POST", "/users/login", "401", time.Millisecond)

	ts := httptest.NewServer(r.Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	assert.True(t, strings.Contains(string(body), `pet_adoption_http_requests_total{method="POST",route="/users/login",service="user-service",status="401"} 1`), string(body))
}

func TestNilReceivers(t *testing.T) {
	var h *HTTP
	var a *Adoptions
	h.Observe("GET", "/", "200", 0)
	a.Record(OutcomeAdopted)
	assert.Equal(t, 0.0, a.Count(OutcomeAdopted))
}
