package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/flight-itinerary-search/internal/handler"    // handlers that implement the endpoints
	"github.com/iliyamo/flight-itinerary-search/internal/middleware" // JWT verification and rate limiting
)

// RegisterRoutes registers routes that need no authentication or rate
// limiting.  Currently that is only the health check used by load
// balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterSearch registers the itinerary search endpoint.  The rate-limit
// middleware may be nil when redis is unavailable; in that case the
// endpoint runs unlimited.
func RegisterSearch(e *echo.Echo, s *handler.SearchHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/search")
	if limit != nil {
		g.Use(limit)
	}
	g.POST("/itineraries", s.SearchItineraries)
}

// RegisterBrowse registers the public read-only browse endpoints: airports
// (so clients can resolve ids before searching) and individual flight
// lookups.
func RegisterBrowse(e *echo.Echo, f *handler.FlightHandler, a *handler.AirportHandler) {
	e.GET("/v1/airports", a.ListAirports)
	e.GET("/v1/airports/:id", a.GetAirport)
	e.GET("/v1/flights/:id", f.GetFlight)
	e.GET("/v1/flights/number/:number", f.GetFlightByNumber)
}

// RegisterOps registers the operational endpoints (status listings and the
// departure/arrival boards).  They are protected by JWT verification
// against tokens issued by the external identity service.
func RegisterOps(e *echo.Echo, f *handler.FlightHandler, jwtSecret string) {
	g := e.Group("/v1/ops")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.GET("/flights/status/:status", f.GetFlightsByStatus)
	g.GET("/airports/:id/departures", f.GetDepartures)
	g.GET("/airports/:id/arrivals", f.GetArrivals)
}
