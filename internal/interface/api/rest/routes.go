package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// employees
	RouteEmployees      = RouteApiV1 + "/employees"
	RouteRegister       = RouteEmployees + "/register"
	RouteLogin          = RouteEmployees + "/login"
	RouteDetails        = RouteEmployees + "/details"
	RouteUpdate         = RouteEmployees + "/update"
	RouteScheduleDelete = RouteEmployees + "/schedule-delete"
	RouteRemoveSchedule = RouteEmployees + "/remove-schedule"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
