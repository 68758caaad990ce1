package notify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Signature headers accompanying signed webhook deliveries.
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
	HeaderWebhookID        = "X-Webhook-ID"
)

type signatureHeaders struct {
	signature string
	timestamp int64
	id        string
}

func (s signatureHeaders) headers() map[string]string {
	return map[string]string{
		HeaderWebhookSignature: s.signature,
		HeaderWebhookTimestamp: strconv.FormatInt(s.timestamp, 10),
		HeaderWebhookID:        s.id,
	}
}

// signPayload signs a payload bound to the given time. The signature covers
// "<unix timestamp>.<payload>" so a replayed delivery ages out with its
// timestamp.
func signPayload(secret string, payload []byte, now time.Time) signatureHeaders {
	ts := now.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return signatureHeaders{
		signature: hex.EncodeToString(mac.Sum(nil)),
		timestamp: ts,
		id:        uuid.NewString(),
	}
}

// VerifyWebhookSignature authenticates a webhook delivery on the receiving
// side. Pass the raw request body, the request headers, and the shared
// secret; maxAge bounds how old a signature may be, with 0 disabling the age
// check. Comparison is constant-time.
func VerifyWebhookSignature(secret string, payload []byte, header http.Header, maxAge time.Duration) error {
	if secret == "" {
		return fmt.Errorf("%w: secret is required", ErrInvalidSignature)
	}
	signature := header.Get(HeaderWebhookSignature)
	if signature == "" {
		return fmt.Errorf("%w: missing %s header", ErrInvalidSignature, HeaderWebhookSignature)
	}
	ts, err := strconv.ParseInt(header.Get(HeaderWebhookTimestamp), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: missing or malformed %s header", ErrInvalidSignature, HeaderWebhookTimestamp)
	}

	if maxAge > 0 {
		age := time.Since(time.Unix(ts, 0))
		if age > maxAge {
			return fmt.Errorf("%w: signature is %s old", ErrInvalidSignature, age.Truncate(time.Second))
		}
		// Tolerate modest clock skew, reject far-future timestamps.
		if age < -time.Minute {
			return fmt.Errorf("%w: signature timestamp is in the future", ErrInvalidSignature)
		}
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: signature mismatch", ErrInvalidSignature)
	}
	return nil
}
