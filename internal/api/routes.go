package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/casewise/compliance-agent/internal/api/middleware"
	"github.com/casewise/compliance-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/evaluate").
			To(handler.Evaluate).
			Doc("Evaluate an agent response against a scenario policy").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Reads(models.EvaluationRequest{}).
			Writes(models.EvaluationRecord{}).
			Returns(200, "OK", models.EvaluationRecord{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Scenario Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/evaluations").
			To(handler.Evaluations).
			Doc("List recent evaluation records").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Param(ws.QueryParameter("limit", "Maximum records to return (default: 50)").DataType("integer").Required(false)).
			Writes([]models.EvaluationRecord{}).
			Returns(200, "OK", []models.EvaluationRecord{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/scenarios").
			To(handler.Scenarios).
			Doc("List available scenarios").
			Metadata(restfulspec.KeyOpenAPITags, []string{"catalog"}).
			Writes([]models.Scenario{}).
			Returns(200, "OK", []models.Scenario{}))

	ws.
		Route(ws.GET("/personas").
			To(handler.Personas).
			Doc("List available personas").
			Metadata(restfulspec.KeyOpenAPITags, []string{"catalog"}).
			Writes([]models.Persona{}).
			Returns(200, "OK", []models.Persona{}))

	container.Add(ws)
}
