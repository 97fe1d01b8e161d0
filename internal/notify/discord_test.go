package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/metrics"
)

func testFailure(reason string) PublishFailure {
	return PublishFailure{
		ListingID:   "3f0c1d2e",
		Title:       "Succulent in pot",
		Marketplace: "ebay",
		Reason:      reason,
		Detail:      "marketplace rejected offer: eBay API error (status 400): invalid category",
	}
}

func capture(t *testing.T, status int, into *discordWebhookPayload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(into))
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDiscordNotifier_SendPublishFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		failure    PublishFailure
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "remote rejection is red",
			failure:    testFailure("remote_rejected"),
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
		},
		{
			name:       "seller action is orange",
			failure:    testFailure("policy_incomplete"),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "discord returns 429 rate limited",
			failure:    testFailure("remote_rejected"),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			failure:    testFailure("remote_rejected"),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload
			srv := capture(t, tt.statusCode, &received)

			err := NewDiscordNotifier(srv.URL).SendPublishFailure(context.Background(), &tt.failure)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.failure.Title)
			assert.Equal(t, tt.failure.Detail, embed.Description)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, tt.failure.ListingID, fieldMap["Listing"])
			assert.Equal(t, tt.failure.Marketplace, fieldMap["Marketplace"])
			assert.Equal(t, tt.failure.Reason, fieldMap["Reason"])
		})
	}
}

func TestDiscordNotifier_LongDetailTruncated(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload
	srv := capture(t, http.StatusNoContent, &received)

	f := testFailure("error")
	f.Detail = strings.Repeat("x", 5000)
	require.NoError(t, NewDiscordNotifier(srv.URL).SendPublishFailure(context.Background(), &f))

	require.Len(t, received.Embeds, 1)
	assert.Len(t, received.Embeds[0].Description, maxFieldLength)
	assert.True(t, strings.HasSuffix(received.Embeds[0].Description, "..."))
}

func TestDiscordNotifier_SendDeletion(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload
	srv := capture(t, http.StatusNoContent, &received)

	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("listing-%d", i)
	}
	err := NewDiscordNotifier(srv.URL).SendDeletion(context.Background(), &Deletion{
		Marketplace: "ebay",
		Kind:        "account",
		ExternalID:  "seller-9",
		ListingIDs:  ids,
	})
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	embed := received.Embeds[0]
	assert.Equal(t, colorGrey, embed.Color)
	assert.Equal(t, "account seller-9 deleted on ebay", embed.Title)
	require.Len(t, embed.Fields, 1)
	assert.Contains(t, embed.Fields[0].Value, "listing-9")
	assert.NotContains(t, embed.Fields[0].Value, "listing-10")
	assert.Contains(t, embed.Fields[0].Value, "... and 2 more")
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	f := testFailure("error")
	err := d.SendPublishFailure(context.Background(), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	err := d.SendDeletion(context.Background(), &Deletion{Marketplace: "ebay", Kind: "item"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendPublishFailure_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	f := testFailure("error")
	require.NoError(t, NewDiscordNotifier(srv.URL).SendPublishFailure(context.Background(), &f))

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}
