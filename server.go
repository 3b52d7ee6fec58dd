package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/comfy"
	"github.com/justinfleek/lattice-pose/config"
	"github.com/justinfleek/lattice-pose/encoding/openpose"
	"github.com/justinfleek/lattice-pose/export"
	"github.com/justinfleek/lattice-pose/log"
	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
	"github.com/justinfleek/lattice-pose/version"
)

type ApiServer struct {
	cfg      *config.Config
	renderer *render.Renderer
}

func NewApiServer(cfg *config.Config) *ApiServer {
	return &ApiServer{
		cfg:      cfg,
		renderer: render.New(),
	}
}

func (s *ApiServer) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": err.Error(),
	})
}

func (s *ApiServer) writeSuccess(w http.ResponseWriter, data map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	data["status"] = "success"
	json.NewEncoder(w).Encode(data)
}

// renderStatus maps a render failure to an HTTP status.
func renderStatus(err error) int {
	if errors.Cause(err) == render.ErrInvalidConfig {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type renderConfigJSON struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	BoneWidth      float64 `json:"bone_width"`
	KeypointRadius float64 `json:"keypoint_radius"`
	OpenposeColors *bool   `json:"openpose_colors"`
	ShowBones      *bool   `json:"show_bones"`
	ShowKeypoints  *bool   `json:"show_keypoints"`
}

// toRenderConfig fills unset request fields from the server defaults.
func (s *ApiServer) toRenderConfig(rc renderConfigJSON) render.Config {
	cfg := s.cfg.RenderConfig()
	if rc.Width > 0 {
		cfg.Width = rc.Width
	}
	if rc.Height > 0 {
		cfg.Height = rc.Height
	}
	if rc.BoneWidth > 0 {
		cfg.BoneWidth = rc.BoneWidth
	}
	if rc.KeypointRadius > 0 {
		cfg.KeypointRadius = rc.KeypointRadius
	}
	if rc.OpenposeColors != nil {
		cfg.OpenPoseColors = *rc.OpenposeColors
	}
	if rc.ShowBones != nil {
		cfg.ShowBones = *rc.ShowBones
	}
	if rc.ShowKeypoints != nil {
		cfg.ShowKeypoints = *rc.ShowKeypoints
	}
	return cfg
}

// parseSingleFrame decodes a request body holding one pose document.
func parseSingleFrame(data []byte) ([]pose.Pose, error) {
	docs, err := openpose.ParseAny(data)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected a single frame, got %d", len(docs))
	}
	return docs[0].Poses(), nil
}

// GET /lattice/pose/health
func (s *ApiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeSuccess(w, map[string]interface{}{
		"version": version.Version,
	})
}

// POST /lattice/pose/render
func (s *ApiServer) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Document json.RawMessage  `json:"document"`
		Config   renderConfigJSON `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if len(req.Document) == 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing 'document' field"))
		return
	}

	poses, err := parseSingleFrame(req.Document)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := s.toRenderConfig(req.Config)
	img, err := s.renderer.Render(poses, cfg)
	if err != nil {
		s.writeError(w, renderStatus(err), err)
		return
	}

	data, err := export.PNG(img)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeSuccess(w, map[string]interface{}{
		"image":  base64.StdEncoding.EncodeToString(data),
		"width":  cfg.Width,
		"height": cfg.Height,
	})
}

// POST /lattice/pose/export
func (s *ApiServer) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	docs, err := openpose.ParseAny(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	// Re-export to produce clean contract documents.
	frames := make([]*openpose.Document, len(docs))
	for i, doc := range docs {
		frames[i] = openpose.Export(doc.Poses())
	}

	s.writeSuccess(w, map[string]interface{}{
		"frames": frames,
		"count":  len(frames),
	})
}

// POST /lattice/pose/convert?width=<N>&height=<N>&thumb=<N>
func (s *ApiServer) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	width := s.cfg.Render.Width
	height := s.cfg.Render.Height
	thumb := 0
	if v := query.Get("width"); v != "" {
		width, _ = strconv.Atoi(v)
	}
	if v := query.Get("height"); v != "" {
		height, _ = strconv.Atoi(v)
	}
	if v := query.Get("thumb"); v != "" {
		thumb, _ = strconv.Atoi(v)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	poses, err := parseSingleFrame(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := export.ForConditioning(poses, width, height)
	if err != nil {
		s.writeError(w, renderStatus(err), err)
		return
	}

	data, err := export.PNG(result.Image)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := map[string]interface{}{
		"image":    base64.StdEncoding.EncodeToString(data),
		"document": result.Document,
		"width":    width,
		"height":   height,
	}
	if thumb > 0 {
		tdata, err := export.PNG(export.Thumbnail(result.Image, thumb))
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp["thumbnail"] = base64.StdEncoding.EncodeToString(tdata)
	}

	s.writeSuccess(w, resp)
}

// GET /lattice/pose/skeleton
func (s *ApiServer) handleSkeleton(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	colors := pose.BodyColors()

	type keypointJSON struct {
		Index  int    `json:"index"`
		Name   string `json:"name"`
		Region string `json:"region"`
		Color  []int  `json:"color"`
	}
	keypoints := make([]keypointJSON, pose.BodyKeypointCount)
	for i := range keypoints {
		keypoints[i] = keypointJSON{
			Index:  i,
			Name:   pose.LandmarkName(i),
			Region: pose.RegionOf(i).String(),
			Color:  rgbOf(colors.KeypointColor(i)),
		}
	}

	type boneJSON struct {
		A     int   `json:"a"`
		B     int   `json:"b"`
		Color []int `json:"color"`
	}
	skeleton := pose.BodySkeleton()
	bones := make([]boneJSON, len(skeleton))
	for i, b := range skeleton {
		bones[i] = boneJSON{
			A:     b.A,
			B:     b.B,
			Color: rgbOf(colors.BoneColor(i)),
		}
	}

	s.writeSuccess(w, map[string]interface{}{
		"keypoints": keypoints,
		"bones":     bones,
	})
}

// GET /lattice/preprocessors/list
func (s *ApiServer) handlePreprocessors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	type preprocessorJSON struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		NodeClass      string `json:"node_class"`
		EmitsKeypoints bool   `json:"emits_keypoints"`
	}

	preps := comfy.Preprocessors()
	list := make([]preprocessorJSON, len(preps))
	for i, p := range preps {
		list[i] = preprocessorJSON{
			ID:             p.ID,
			Name:           p.Display,
			NodeClass:      p.NodeClass,
			EmitsKeypoints: p.EmitsKeypoints,
		}
	}

	s.writeSuccess(w, map[string]interface{}{
		"preprocessors": list,
		"total":         len(list),
	})
}

func rgbOf(c color.Color) []int {
	r, g, b, _ := c.RGBA()
	return []int{int(r >> 8), int(g >> 8), int(b >> 8)}
}

func runServerMode(port string, cfg *config.Config) {
	server := NewApiServer(cfg)

	mux := http.NewServeMux()

	mux.HandleFunc("/lattice/pose/health", server.handleHealth)
	mux.HandleFunc("/lattice/pose/render", server.handleRender)
	mux.HandleFunc("/lattice/pose/export", server.handleExport)
	mux.HandleFunc("/lattice/pose/convert", server.handleConvert)
	mux.HandleFunc("/lattice/pose/skeleton", server.handleSkeleton)
	mux.HandleFunc("/lattice/preprocessors/list", server.handlePreprocessors)

	// Root endpoint with API documentation
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
	<title>lattice-pose API</title>
</head>
<body>
	<h1>lattice-pose API</h1>
	<h2>Endpoints:</h2>
	<ul>
		<li>GET /lattice/pose/health - Health and version</li>
		<li>POST /lattice/pose/render - Render a pose document to PNG</li>
		<li>POST /lattice/pose/export - Normalize pose documents</li>
		<li>POST /lattice/pose/convert - Produce conditioning image and document</li>
		<li>GET /lattice/pose/skeleton - Bone topology and palette</li>
		<li>GET /lattice/preprocessors/list - Available preprocessors</li>
	</ul>
</body>
</html>
		`)
	})

	log.Info.Printf("Starting HTTP server on port %s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Error.Fatalf("Server failed: %v", err)
	}
}
