package server_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridboard/pkg/catalog"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/server"
	"github.com/matzehuels/gridboard/pkg/session"
)

func ExampleServer_Handler() {
	seed, _ := layout.New(catalog.Default())
	s := server.New(seed, session.NewMemoryStore(time.Hour), server.WithLogger(log.New(io.Discard)))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions/unknown/intents", strings.NewReader(`{"kind":"remove","widget":"sales-1"}`)))

	fmt.Println(rec.Code)
	fmt.Print(rec.Body.String())
	// Output:
	// 404
	// {"error":{"code":"SESSION_NOT_FOUND","message":"session \"unknown\" not found"}}
}
