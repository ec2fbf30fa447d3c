package api

import (
	"github.com/cardwise/card-assistant/internal/api/middleware"
	"github.com/cardwise/card-assistant/internal/models"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/ask").
			To(handler.Ask).
			Doc("Answer a credit card question").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ask"}).
			Reads(AskRequest{}).
			Writes(models.Answer{}).
			Returns(200, "OK", models.Answer{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/documents").
			To(handler.IngestDocument).
			Doc("Ingest extracted document text into the index").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Reads(IngestRequest{}).
			Writes(IngestResponse{}).
			Returns(200, "OK", IngestResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Unprocessable Document", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/documents").
			To(handler.ClearDocuments).
			Doc("Clear the document index").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Writes(ClearResponse{}).
			Returns(200, "OK", ClearResponse{}))

	ws.
		Route(ws.GET("/documents/stats").
			To(handler.Stats).
			Doc("Document index statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Writes(models.IndexStats{}).
			Returns(200, "OK", models.IndexStats{}))

	container.Add(ws)
}
