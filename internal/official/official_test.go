package official

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing user agent")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "id selector",
			body: `<html><body><div id="MevzuatMetni"><p>MADDE 1 –</p><p> (1) Bu Kanunun <b>amacı</b>;</p><script>x()</script></div></body></html>`,
			want: "MADDE 1 – (1) Bu Kanunun amacı ;",
		},
		{
			name: "class selector",
			body: `<html><body><nav>menü</nav><div class="mevzuat-metin">MADDE 6 – Özel nitelikli </div></body></html>`,
			want: "MADDE 6 – Özel nitelikli",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tc.body)
			got, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background())
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFetch_FallbackToBody(t *testing.T) {
	body := "<html><body>" + strings.Repeat("ş", 6000) + "</body></html>"
	srv := serve(t, http.StatusOK, body)
	got, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n := utf8.RuneCountInString(got); n != FallbackRunes {
		t.Errorf("fallback length = %d", n)
	}
	if !strings.HasPrefix(got, "<html><body>ş") {
		t.Errorf("fallback should be the raw page start: %q", got[:20])
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := serve(t, http.StatusServiceUnavailable, "down")
	if _, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 503")
	}
}
