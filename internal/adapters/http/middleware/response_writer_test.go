package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_Records(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		respond     func(w http.ResponseWriter)
		wantStatus  int
		wantWritten int64
		wantHeader  bool
	}{
		{
			name:       "nothing written",
			respond:    func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "redirect after post",
			respond: func(w http.ResponseWriter) {
				w.Header().Set("Location", "/guardian-details.html")
				w.WriteHeader(http.StatusSeeOther)
			},
			wantStatus: http.StatusSeeOther,
			wantHeader: true,
		},
		{
			name: "implicit ok",
			respond: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("<h2>Personal Info</h2>"))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 22,
			wantHeader:  true,
		},
		{
			name: "re-rendered page",
			respond: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte("<form>"))
				_, _ = w.Write([]byte("</form>"))
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantWritten: 13,
			wantHeader:  true,
		},
		{
			name: "first status wins",
			respond: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadGateway)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusBadGateway,
			wantHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.respond(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantWritten {
				t.Errorf("written = %d, want %d", rw.written, tt.wantWritten)
			}
			if rw.headerWritten != tt.wantHeader {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantHeader)
			}
			if tt.wantHeader && rec.Code != tt.wantStatus {
				t.Errorf("recorder status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
	if err := http.NewResponseController(rw).Flush(); err != nil {
		t.Errorf("Flush through wrapper: %v", err)
	}
}
