package hiscores

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLookup(t *testing.T) {
	l, err := NewLookup("  Lynx Titan ", "him")
	require.NoError(t, err)
	assert.Equal(t, Lookup{Player: "Lynx Titan", AccountType: HardcoreIronman}, l)

	_, err = NewLookup("Zezima", "HIC")
	var invalid *InvalidAccountTypeError
	require.True(t, errors.As(err, &invalid))

	_, err = NewLookup("   ", "N")
	assert.ErrorIs(t, err, ErrEmptyPlayer)
}

func TestClassify(t *testing.T) {
	l := Lookup{Player: "Zezima", AccountType: Ironman}

	body, err := Classify(l, http.StatusOK, []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), body)

	_, err = Classify(l, http.StatusNotFound, nil)
	var notFound *PlayerNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Zezima", notFound.Player)
	assert.Equal(t, Ironman, notFound.AccountType)

	_, err = Classify(l, http.StatusServiceUnavailable, nil)
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
}

func TestClientFetch(t *testing.T) {
	var gotURI, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(syntheticPayload()))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithUserAgent("test-agent"))
	s, err := c.Fetch(context.Background(), Lookup{Player: "Iron Man", AccountType: UltimateIronman})
	require.NoError(t, err)

	assert.Equal(t, "/m=hiscore_oldschool_ultimate/index_lite.ws?player=Iron%20Man", gotURI)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, "Iron Man", s.Player)
	assert.Equal(t, UltimateIronman, s.AccountType)
	level, err := s.SkillField("defense", "level")
	require.NoError(t, err)
	assert.Equal(t, int64(2), level)
}

func TestClientFetchStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"not found", http.StatusNotFound, func(t *testing.T, err error) {
			var target *PlayerNotFoundError
			assert.True(t, errors.As(err, &target))
		}},
		{"unavailable", http.StatusServiceUnavailable, func(t *testing.T, err error) {
			var target *UpstreamError
			require.True(t, errors.As(err, &target))
			assert.Equal(t, http.StatusServiceUnavailable, target.StatusCode)
		}},
		{"forbidden", http.StatusForbidden, func(t *testing.T, err error) {
			var target *UpstreamError
			require.True(t, errors.As(err, &target))
			assert.Equal(t, http.StatusForbidden, target.StatusCode)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			s, err := NewClient(WithBaseURL(srv.URL)).Fetch(context.Background(), Lookup{Player: "Zezima"})
			assert.Nil(t, s)
			tt.check(t, err)
		})
	}
}

func TestClientFetchMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1,2,3\n"))
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).Fetch(context.Background(), Lookup{Player: "Zezima"})
	var target *MalformedPayloadError
	assert.True(t, errors.As(err, &target))
}

func TestClientFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(WithBaseURL(srv.URL)).Fetch(ctx, Lookup{Player: "Zezima"})
	var target *TransportError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientFetchClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond)).Fetch(context.Background(), Lookup{Player: "Zezima"})
	var target *TransportError
	assert.True(t, errors.As(err, &target), "got %v", err)
}

func TestNewClientKeepsCallerHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: 2 * time.Minute}

	c := NewClient(WithHTTPClient(hc))
	assert.Equal(t, 2*time.Minute, hc.Timeout)
	assert.Equal(t, 2*time.Minute, c.http.GetClient().Timeout)

	c = NewClient(WithHTTPClient(hc), WithTimeout(50*time.Millisecond))
	assert.Equal(t, 2*time.Minute, hc.Timeout)
	assert.Equal(t, 50*time.Millisecond, c.http.GetClient().Timeout)

	c = NewClient()
	assert.Equal(t, DefaultTimeout, c.http.GetClient().Timeout)
}

func TestClientFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(WithBaseURL(url)).Fetch(context.Background(), Lookup{Player: "Zezima"})
	var target *TransportError
	assert.True(t, errors.As(err, &target), "got %v", err)
}

func TestClientFetchRejectsBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.Fetch(context.Background(), Lookup{Player: "Zezima", AccountType: AccountType(99)})
	var invalid *InvalidAccountTypeError
	assert.True(t, errors.As(err, &invalid))

	_, err = c.Fetch(context.Background(), Lookup{Player: " ", AccountType: Normal})
	assert.ErrorIs(t, err, ErrEmptyPlayer)

	assert.False(t, called)
}
