package providers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"wld/internal/models"
	"wld/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	GetRoutes() []structures.Route
	NotFoundHandler() http.Handler
}

type RouterProvider struct {
	routes []structures.Route
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Url:     url,
		Method:  http.MethodGet,
		Handler: methodHandler(http.MethodGet, handler),
	})
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Url:     url,
		Method:  http.MethodPost,
		Handler: methodHandler(http.MethodPost, handler),
	})
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

// NotFoundHandler answers any unmatched path with a directory of the
// registered endpoints.
func (rp *RouterProvider) NotFoundHandler() http.Handler {
	endpoints := make(map[string]string, len(rp.routes))
	for _, route := range rp.routes {
		endpoints[route.Url] = route.Method
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := models.ErrorResponse{
			Success:   false,
			Message:   "Endpoint not found",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Endpoints: endpoints,
		}

		gson, err := json.Marshal(resp)
		if err != nil {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(gson)
	})
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{}
}

func methodHandler(method string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
