// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the employee service.
//
// Each sub-command (login, get, create, update, delete, list, search, avg,
// health, import) maps onto one call of [adapter.EmployeeAdapter]. The bearer
// token obtained by "login" is kept in a local file and reused by the
// commands that mutate data.
package client
