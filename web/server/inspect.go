package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	UV           [2]float64             `json:"uv"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color"` // Shaded pixel color as #rrggbb
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect reports what the primary ray through a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	_, sc, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", 0, 0, int(sc.Width)-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, int(sc.Height)-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := inspectPixel(sc, x, y)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// inspectPixel casts the primary ray through pixel (x, y) and describes the first object hit
func inspectPixel(sc *scene.Scene, x, y int) (InspectResponse, error) {
	camera, err := renderer.NewCamera(sc)
	if err != nil {
		return InspectResponse{}, err
	}

	ray := camera.PrimaryRay(x, y)
	shaded := integrator.NewWhittedIntegrator().RayColor(ray, sc, 0).ToRGBA()
	response := InspectResponse{
		Color: fmt.Sprintf("#%02x%02x%02x", shaded.R, shaded.G, shaded.B),
	}

	hit, ok := sc.Trace(ray)
	if !ok {
		return response, nil
	}

	point := ray.At(hit.Distance)
	normal := hit.Object.SurfaceNormal(point)
	uv := hit.Object.TextureCoords(point)

	response.Hit = true
	response.Distance = hit.Distance
	response.Point = [3]float64{point.X, point.Y, point.Z}
	response.Normal = [3]float64{normal.X, normal.Y, normal.Z}
	response.UV = [2]float64{uv.U, uv.V}
	response.Properties = make(map[string]interface{})
	response.GeometryType = extractGeometryInfo(hit.Object, response.Properties)
	response.MaterialType = extractMaterialInfo(hit.Object.Material(), response.Properties)

	return response, nil
}

// extractGeometryInfo names the primitive and records its shape parameters
func extractGeometryInfo(obj geometry.Primitive, properties map[string]interface{}) string {
	switch g := obj.(type) {
	case *geometry.Sphere:
		properties["center"] = pointArray(g.Center)
		properties["radius"] = g.Radius
		return "sphere"
	case *geometry.Plane:
		properties["origin"] = pointArray(g.Origin)
		properties["planeNormal"] = [3]float64{g.Normal.X, g.Normal.Y, g.Normal.Z}
		return "plane"
	case *geometry.Disc:
		properties["center"] = pointArray(g.Center)
		properties["radius"] = g.Radius
		return "disc"
	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{pointArray(g.V0), pointArray(g.V1), pointArray(g.V2)}
		return "triangle"
	default:
		return "unknown"
	}
}

// extractMaterialInfo classifies the surface and records its parameters
func extractMaterialInfo(mat *material.Material, properties map[string]interface{}) string {
	surface := mat.Surface
	properties["diffuseAlbedo"] = surface.DiffuseAlbedo
	properties["reflectRatio"] = surface.ReflectRatio
	properties["refractiveIndex"] = surface.RefractiveIndex

	switch c := mat.Coloration.(type) {
	case *material.SolidColor:
		rgba := c.Value.ToRGBA()
		properties["materialColor"] = fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	case *material.Texture:
		properties["texture"] = fmt.Sprintf("%dx%d", c.Width, c.Height)
	}

	switch {
	case surface.IsDielectric():
		return "dielectric"
	case surface.ReflectRatio > 0:
		return "reflective"
	default:
		return "diffuse"
	}
}

func pointArray(p core.Point) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}
