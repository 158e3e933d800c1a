package hiscores

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL   = "https://secure.runescape.com"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "osrs-hiscores/libs/hiscores"
)

// Lookup identifies one hiscores entry.
type Lookup struct {
	Player      string
	AccountType AccountType
}

// NewLookup validates both inputs before anything touches the network.
func NewLookup(player string, accountType string) (Lookup, error) {
	t, err := ParseAccountType(accountType)
	if err != nil {
		return Lookup{}, err
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return Lookup{}, ErrEmptyPlayer
	}
	return Lookup{Player: player, AccountType: t}, nil
}

type options struct {
	baseURL    string
	timeout    time.Duration
	timeoutSet bool
	userAgent  string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

type Option func(*options)

func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(url, "/") }
}

// WithTimeout bounds every request on top of the caller's context. Zero
// disables the client-level timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
		o.timeoutSet = true
	}
}

func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithHTTPClient makes requests through a copy of hc. The copy keeps hc's
// timeout unless WithTimeout is also given; hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger sets where request events go. By default nothing is written.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// Client fetches snapshots from the hiscores. It holds no per-lookup state and
// is safe for concurrent use.
type Client struct {
	http *resty.Client
	log  logrus.FieldLogger
}

func NewClient(opts ...Option) *Client {
	o := options{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = discard
	}

	var rc *resty.Client
	if o.httpClient != nil {
		// resty writes its settings into the client it wraps.
		hc := *o.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
	}
	if o.timeoutSet || o.httpClient == nil {
		rc.SetTimeout(o.timeout)
	}
	rc.SetBaseURL(o.baseURL).
		SetRetryCount(0).
		SetLogger(o.logger).
		SetHeader("User-Agent", o.userAgent)

	return &Client{http: rc, log: o.logger}
}

// Fetch performs a single request for l and decodes the result. Every failure
// is returned as one of the package's typed errors.
func (c *Client) Fetch(ctx context.Context, l Lookup) (*Snapshot, error) {
	if !l.AccountType.Valid() {
		return nil, &InvalidAccountTypeError{Value: strconv.Itoa(int(l.AccountType))}
	}
	l.Player = strings.TrimSpace(l.Player)
	if l.Player == "" {
		return nil, ErrEmptyPlayer
	}
	path, err := l.AccountType.Path(l.Player)
	if err != nil {
		return nil, err
	}

	logger := c.log.WithFields(logrus.Fields{"player": l.Player, "account_type": l.AccountType.String()})

	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		logger.WithField("event", "do_request_hiscores").Debug(err)
		return nil, &TransportError{Err: err}
	}

	body, err := Classify(l, res.StatusCode(), res.Body())
	if err != nil {
		logger.WithField("event", "classify_hiscores").WithField("status", res.StatusCode()).Debug(err)
		return nil, err
	}

	snapshot, err := Decode(body)
	if err != nil {
		logger.WithField("event", "decode_hiscores").Debug(err)
		return nil, err
	}
	snapshot.Player = l.Player
	snapshot.AccountType = l.AccountType
	return snapshot, nil
}

// Classify maps the status of a completed request to the payload or an error.
func Classify(l Lookup, status int, body []byte) ([]byte, error) {
	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, &PlayerNotFoundError{Player: l.Player, AccountType: l.AccountType}
	default:
		return nil, &UpstreamError{StatusCode: status}
	}
}
