package sink

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"dishseed/config"
	"dishseed/customerrors"
	"dishseed/models"
	"gorm.io/driver/sqlite"
)

var pasta = models.Record{Name: "Creamy Pasta", Category: "Italian"}

func TestHTTPSubmitSuccess(t *testing.T) {
	var got models.Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing request id")
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad body %q: %v", body, err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, 2, time.Second)
	defer h.Close()
	if err := h.Submit(context.Background(), pasta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != pasta {
		t.Fatalf("server received %+v", got)
	}
}

func TestHTTPSubmitNon200IsStatusError(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte("nope\n"))
		}))
		err := NewHTTP(srv.URL, 1, 0).Submit(context.Background(), pasta)
		srv.Close()

		var se *customerrors.StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusError for %d, got %v", code, err)
		}
		if se.Code != code || se.Body != "nope" {
			t.Fatalf("unexpected status error %+v", se)
		}
	}
}

func TestHTTPSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewHTTP(url, 1, time.Second).Submit(context.Background(), pasta)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var se *customerrors.StatusError
	if errors.As(err, &se) {
		t.Fatal("transport error must not look like a status error")
	}
}

func TestPostgresSinkOnSqlite(t *testing.T) {
	p, err := OpenPostgres(sqlite.Open(filepath.Join(t.TempDir(), "dishes.db")))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	ctx := context.Background()
	recs := []models.Record{pasta, pasta, {Name: "Ramen", Category: "Japanese"}}
	for _, r := range recs {
		if err := p.Submit(ctx, r); err != nil {
			t.Fatalf("submit %v: %v", r, err)
		}
	}
	if n, err := p.Count(ctx, ""); err != nil || n != 3 {
		t.Fatalf("expected 3 rows, got %d (%v)", n, err)
	}
	if n, err := p.Count(ctx, "Italian"); err != nil || n != 2 {
		t.Fatalf("expected 2 italian rows, got %d (%v)", n, err)
	}
}

func TestKafkaMessageKeyedByCategory(t *testing.T) {
	msg := ToKafkaMessage(pasta)
	if string(msg.Key) != "Italian" {
		t.Fatalf("unexpected key %q", msg.Key)
	}
	var r models.Record
	if err := json.Unmarshal(msg.Value, &r); err != nil || r != pasta {
		t.Fatalf("unexpected value %q", msg.Value)
	}
}

func TestRedisSubmitUnreachable(t *testing.T) {
	r := NewRedis("127.0.0.1:1", "dishes")
	defer r.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.Submit(ctx, pasta); err == nil {
		t.Fatal("expected error from unreachable redis")
	}
}

func TestNewPicksKind(t *testing.T) {
	conf := config.Default()
	s, err := New(conf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*HTTP); !ok {
		t.Fatalf("expected http sink, got %T", s)
	}
	conf.Sink.Kind = config.SinkKafka
	conf.Sink.Kafka.Brokers = []string{"localhost:9092"}
	if s, _ = New(conf); s == nil {
		t.Fatal("expected kafka sink")
	}
	if _, ok := s.(*Kafka); !ok {
		t.Fatalf("expected kafka sink, got %T", s)
	}
	_ = s.Close()
	conf.Sink.Kind = "pigeon"
	if _, err = New(conf); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestNewPostgresFailureReturnsNilSink(t *testing.T) {
	conf := config.Default()
	conf.Sink.Kind = config.SinkPostgres
	conf.Sink.Postgres.DSN = "host=127.0.0.1 port=1 user=seed dbname=dishes sslmode=disable connect_timeout=1"
	s, err := New(conf)
	if err == nil {
		_ = s.Close()
		t.Fatal("expected connection error")
	}
	if s != nil {
		t.Fatalf("expected a nil Sink, got %#v", s)
	}
}
