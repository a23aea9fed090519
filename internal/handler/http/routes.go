// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-employee-service/internal/utils"
)

// Init builds the router of the employee API.
//
// Static segments under /employees (avg-salary, search) are registered before
// the {employee_id} parameter route; chi's radix tree also prefers them.
// Reads are public, mutations go through the auth middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(withGzipRequest, middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/token", h.login)
		r.Get("/health", h.health)

		r.Get("/employees/avg-salary", h.averageSalary)
		r.Get("/employees/search", h.searchBySkill)
		r.Get("/employees", h.listByDepartment)
		r.Get("/employees/{employee_id}", h.getEmployee)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/employees", h.createEmployee)
		r.Put("/employees/{employee_id}", h.updateEmployee)
		r.Delete("/employees/{employee_id}", h.deleteEmployee)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
