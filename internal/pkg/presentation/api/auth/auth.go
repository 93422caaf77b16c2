package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type allowedTenantsContextKey struct{ name string }

var tenantsCtxKey = &allowedTenantsContextKey{"allowed-tenants"}

var tracer = otel.Tracer("iot-telemetry/authz")

// NewAuthenticator returns a middleware that validates the caller's bearer
// token against the supplied rego policy. The policy either denies the
// request or yields the set of tenants the caller may see, which is stored
// in the request context for the handlers downstream.
//
// Browser websocket clients can not set an Authorization header, so a token
// query parameter is accepted as a fallback.
func NewAuthenticator(ctx context.Context, log *slog.Logger, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.iot.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := bearerToken(r)
			if token == "" {
				err = errors.New("authorization header missing")
				log.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token": token,
				"path":  strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				log.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				log.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// a denied request comes back as a single bool
			if allowed, ok := binding.(bool); ok && !allowed {
				err = errors.New("authorization failed")
				log.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type from authz policy engine")
				log.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			anyTenants, ok := result["tenants"].([]any)
			if !ok {
				err = errors.New("bad response from authz policy engine")
				log.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			tenants := make([]string, 0, len(anyTenants))
			for _, t := range anyTenants {
				if tenant, ok := t.(string); ok {
					tenants = append(tenants, tenant)
				}
			}

			if len(tenants) == 0 {
				err = errors.New("authorization failed")
				log.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAllowedTenants(r.Context(), tenants)))
		})
	}, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}

	return r.URL.Query().Get("token")
}

// GetAllowedTenantsFromContext extracts the names of allowed tenants, if any,
// from the provided context
func GetAllowedTenantsFromContext(ctx context.Context) []string {
	tenants, ok := ctx.Value(tenantsCtxKey).([]string)
	if !ok {
		return []string{}
	}

	return tenants
}

func WithAllowedTenants(ctx context.Context, tenants []string) context.Context {
	return context.WithValue(ctx, tenantsCtxKey, tenants)
}
