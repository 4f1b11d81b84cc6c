package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bazaarmind/console/internal/domain/chat"
	"github.com/bazaarmind/console/internal/infrastructure/config"
)

func newTestClient(serverURL string) *ParserClient {
	return NewParserClient(config.ParserConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestParserClient_Parse(t *testing.T) {
	shopID := uuid.New()
	productID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parse-order", r.URL.Path)

		var req parseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, shopID.String(), req.ShopID)
		assert.Equal(t, "+917000000000", req.CustomerPhone)
		assert.Equal(t, "WA Customer", req.CustomerName)
		assert.Equal(t, "2 milk", req.Message)

		json.NewEncoder(w).Encode(chat.ParsedOrder{
			Items: []chat.ParsedItem{{
				Name:               "milk",
				Quantity:           2,
				MatchedProductID:   &productID,
				MatchedProductName: "Milk",
				Confidence:         0.95,
			}},
			ParseMethod: chat.ParseMethodRuleBased,
		})
	}))
	defer server.Close()

	parsed, err := newTestClient(server.URL).Parse(context.Background(), chat.ParseRequest{
		ShopID:        shopID,
		CustomerPhone: "+917000000000",
		CustomerName:  "WA Customer",
		Message:       "2 milk",
	})

	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)
	assert.True(t, parsed.Items[0].Matched())
	assert.Equal(t, "Milk", parsed.Items[0].MatchedProductName)
	// The raw message is filled in when the parser omits it.
	assert.Equal(t, "2 milk", parsed.RawMessage)
}

func TestParserClient_Parse_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Parse(context.Background(), chat.ParseRequest{ShopID: uuid.New(), Message: "2 milk"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestParserClient_Parse_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Parse(context.Background(), chat.ParseRequest{ShopID: uuid.New(), Message: "2 milk"})

	require.Error(t, err)
}
