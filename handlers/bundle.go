package handlers

import (
	userRepo "bookit/database/repository/user"
)

// HandlerBundle aggregates every handler and the repositories the route
// middleware needs, so routes.RegisterRoutes takes one argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking   *BookingHandler
	Review    *ReviewHandler
	Catalogue *CatalogueHandler
}
