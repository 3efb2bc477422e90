// Package router assembles the HTTP surface of the API.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/observability"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/common/store"
	healthcheck "restaurant-finder/internal/handlers/infrastructure/health-check"
	likerestaurant "restaurant-finder/internal/handlers/likes/like-restaurant"
	listliked "restaurant-finder/internal/handlers/likes/list-liked"
	"restaurant-finder/internal/handlers/location/geocode"
	searchlocations "restaurant-finder/internal/handlers/location/search-locations"
	getrestaurantdetails "restaurant-finder/internal/handlers/restaurants/get-restaurant-details"
	getrestaurants "restaurant-finder/internal/handlers/restaurants/get-restaurants"
)

// Dependencies are the long-lived collaborators shared by all handlers.
type Dependencies struct {
	Config        *config.Config
	Places        *places.Client
	Liked         *store.LikedSet
	Logger        logger.Logger
	Observability *observability.Observability
}

func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger

	r := gin.New()
	r.Use(
		RequestID(),
		Recovery(log),
		AccessLog(log),
		Metrics(deps.Observability),
		cors.New(corsConfig(cfg.Server.CORS)),
	)

	upstreamTimeout := config.GetDuration(cfg.Places.Timeout)

	geocodeHandler := geocode.NewHandler(&geocode.Config{Timeout: upstreamTimeout}, deps.Places, log)

	searchConfig := searchlocations.LoadConfig()
	searchConfig.Timeout = upstreamTimeout
	searchConfig.Limit = cfg.Places.LocationLimit

	restaurantsHandler := getrestaurants.NewHandler(&getrestaurants.Config{
		Timeout:    upstreamTimeout,
		Radius:     cfg.Places.SearchRadius,
		MaxResults: cfg.Places.MaxResults,
		MinRating:  cfg.Places.MinRating,
		PhotoMaxPx: cfg.Places.PhotoMaxPx,
	}, deps.Places, geocodeHandler, log)

	detailsHandler := getrestaurantdetails.NewHandler(&getrestaurantdetails.Config{Timeout: upstreamTimeout}, deps.Places, log)

	likeHandler := likerestaurant.NewHandler(likerestaurant.LoadConfig(), deps.Liked, log)

	// leave room to write the partial listing before the server write deadline
	listHandler := listliked.NewHandler(&listliked.Config{
		Timeout:    upstreamTimeout,
		Budget:     config.GetDuration(cfg.Server.WriteTimeout) * 9 / 10,
		PhotoMaxPx: cfg.Places.PhotoMaxPx,
	}, deps.Places, deps.Liked, log)

	r.GET(geocode.Route, geocodeHandler.Handle)
	r.GET(searchlocations.Route, searchlocations.NewHandler(searchConfig, deps.Places, log).Handle)
	r.GET(getrestaurants.Route, restaurantsHandler.Handle)
	r.GET(getrestaurantdetails.Route, detailsHandler.Handle)
	r.POST(likerestaurant.Route, likeHandler.Handle)
	r.GET(listliked.Route, listHandler.Handle)
	r.GET(healthcheck.Route, healthcheck.NewHandler(healthcheck.LoadConfig()).Handle)

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, listliked.SkippedHeader},
	}

	if len(c.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
		return cc
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = c.AllowOrigins
	return cc
}
