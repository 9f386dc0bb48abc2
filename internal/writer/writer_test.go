// internal/writer/writer_test.go
package writer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/presence-rotator/internal/status"
)

// ---- fake client ----

type fakeClient struct {
	code int
	body []byte
	err  error

	calls  int
	tokens []string
	bodies [][]byte
}

func (f *fakeClient) Patch(ctx context.Context, token string, body []byte) (int, []byte, error) {
	f.calls++
	f.tokens = append(f.tokens, token)
	f.bodies = append(f.bodies, body)
	return f.code, f.body, f.err
}

func newWriter(t *testing.T, c Client) *Writer {
	t.Helper()
	w, err := New(Config{Token: "tok"}, c)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return w
}

// ---- classification ----

func TestWrite_Classification(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeClient
		want Outcome
	}{
		{
			name: "200 applied",
			fake: &fakeClient{code: 200, body: []byte(`{}`)},
			want: Outcome{Kind: Applied, StatusCode: 200},
		},
		{
			name: "429 with retry_after",
			fake: &fakeClient{code: 429, body: []byte(`{"retry_after": 3}`)},
			want: Outcome{Kind: RateLimited, StatusCode: 429, RetryAfter: 3 * time.Second},
		},
		{
			name: "429 with fractional retry_after",
			fake: &fakeClient{code: 429, body: []byte(`{"message":"You are being rate limited.","retry_after": 1.25,"global":false}`)},
			want: Outcome{Kind: RateLimited, StatusCode: 429, RetryAfter: 1250 * time.Millisecond},
		},
		{
			name: "429 without retry_after",
			fake: &fakeClient{code: 429, body: []byte(`{"message":"slow down"}`)},
			want: Outcome{Kind: RateLimited, StatusCode: 429, RetryAfter: DefaultRetryAfter},
		},
		{
			name: "429 with garbage body",
			fake: &fakeClient{code: 429, body: []byte(`<html>`)},
			want: Outcome{Kind: RateLimited, StatusCode: 429, RetryAfter: DefaultRetryAfter},
		},
		{
			name: "429 with string retry_after",
			fake: &fakeClient{code: 429, body: []byte(`{"retry_after": "3"}`)},
			want: Outcome{Kind: RateLimited, StatusCode: 429, RetryAfter: DefaultRetryAfter},
		},
		{
			name: "429 with negative retry_after",
			fake: &fakeClient{code: 429, body: []byte(`{"retry_after": -1}`)},
			want: Outcome{Kind: RateLimited, StatusCode: 429, RetryAfter: DefaultRetryAfter},
		},
		{
			name: "403 failed",
			fake: &fakeClient{code: 403, body: []byte(`{"message":"Forbidden"}`)},
			want: Outcome{Kind: Failed, StatusCode: 403},
		},
		{
			name: "204 is not 200",
			fake: &fakeClient{code: 204},
			want: Outcome{Kind: Failed, StatusCode: 204},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newWriter(t, tt.fake).Write(context.Background(), status.Payload{})
			if got != tt.want {
				t.Fatalf("got=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestWrite_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	got := newWriter(t, &fakeClient{err: boom}).Write(context.Background(), status.Payload{})

	if got.Kind != TransportError {
		t.Fatalf("kind: got=%s want=transport_error", got.Kind)
	}
	if !errors.Is(got.Err, boom) {
		t.Fatalf("err: got=%v want=%v", got.Err, boom)
	}
}

func TestWrite_ConfiguredRetryAfterFallback(t *testing.T) {
	w, err := New(Config{Token: "tok", DefaultRetryAfter: 9 * time.Second}, &fakeClient{code: 429})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if got := w.Write(context.Background(), status.Payload{}); got.RetryAfter != 9*time.Second {
		t.Fatalf("retry after: got=%s want=9s", got.RetryAfter)
	}
}

func TestWrite_SendsTokenAndBody(t *testing.T) {
	fake := &fakeClient{code: 200}
	w := newWriter(t, fake)

	p := status.Encode(status.Entry{Text: "Hi", EmojiName: "smile"})
	w.Write(context.Background(), p)

	if fake.calls != 1 || fake.tokens[0] != "tok" {
		t.Fatalf("expected one call with token, got calls=%d tokens=%v", fake.calls, fake.tokens)
	}
	want := `{"custom_status":{"text":"Hi","emoji_id":null,"emoji_name":"smile"}}`
	if string(fake.bodies[0]) != want {
		t.Fatalf("body:\n got=%s\nwant=%s", fake.bodies[0], want)
	}
}

func TestNew_RequiresToken(t *testing.T) {
	if _, err := New(Config{Token: " "}, &fakeClient{}); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
	if _, err := New(Config{Token: "tok"}, nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

// ---- wire format ----

func TestMarshal_WireShape(t *testing.T) {
	tests := []struct {
		name  string
		entry status.Entry
		want  string
	}{
		{
			name:  "text only",
			entry: status.Entry{Text: "", EmojiName: ""},
			want:  `{"custom_status":{"text":"","emoji_id":null,"emoji_name":""}}`,
		},
		{
			name:  "custom emoji",
			entry: status.Entry{Text: "Hi", EmojiID: "99", EmojiName: "blob", UseCustomEmoji: true},
			want:  `{"custom_status":{"text":"Hi","emoji_id":"99","emoji_name":"blob"}}`,
		},
		{
			name: "playing drops url",
			entry: status.Entry{
				Text:     "Hi",
				Activity: &status.Activity{Type: status.ActivityPlaying, Name: "chess", URL: "https://x"},
			},
			want: `{"custom_status":{"text":"Hi","emoji_id":null,"emoji_name":""},"activities":[{"type":0,"name":"chess","url":null}]}`,
		},
		{
			name: "streaming keeps url",
			entry: status.Entry{
				Text:     "Hi",
				Activity: &status.Activity{Type: status.ActivityStreaming, Name: "live", URL: "https://twitch.tv/x"},
			},
			want: `{"custom_status":{"text":"Hi","emoji_id":null,"emoji_name":""},"activities":[{"type":1,"name":"live","url":"https://twitch.tv/x"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(status.Encode(tt.entry))
			if err != nil {
				t.Fatalf("Marshal() err=%v", err)
			}
			if string(b) != tt.want {
				t.Fatalf("\n got=%s\nwant=%s", b, tt.want)
			}
		})
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	e := status.Entry{
		Text:           "same",
		EmojiID:        "1",
		EmojiName:      "x",
		UseCustomEmoji: true,
		Activity:       &status.Activity{Type: status.ActivityWatching, Name: "tv"},
	}

	a, err := Marshal(status.Encode(e))
	if err != nil {
		t.Fatalf("Marshal() err=%v", err)
	}
	b, err := Marshal(status.Encode(e))
	if err != nil {
		t.Fatalf("Marshal() err=%v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("encodings differ:\n%s\n%s", a, b)
	}
}
