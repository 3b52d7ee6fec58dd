package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinfleek/lattice-pose/config"
	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

func testServer() *ApiServer {
	return NewApiServer(config.Default())
}

const scenarioDoc = `{
	"version": 1.3,
	"people": [{
		"person_id": [-1],
		"pose_keypoints_2d": [0.5, 0.5, 0.9, 0.6, 0.5, 0.9, 0.5, 0.1, 0.05]
	}]
}`

func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleHealth(w, httptest.NewRequest(http.MethodGet, "/lattice/pose/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestHandleRender(t *testing.T) {
	body := `{"document": ` + scenarioDoc + `, "config": {"width": 100, "height": 100}}`

	w := httptest.NewRecorder()
	testServer().handleRender(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/render", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Image  string `json:"image"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 100, resp.Width)
	assert.Equal(t, 100, resp.Height)

	data, err := base64.StdEncoding.DecodeString(resp.Image)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestHandleRenderRejectsBadBody(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleRender(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/render", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	testServer().handleRender(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/render", strings.NewReader("{}")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRenderRejectsGet(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleRender(w, httptest.NewRequest(http.MethodGet, "/lattice/pose/render", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleExportNormalizesPixelFrames(t *testing.T) {
	body := `[{
		"version": 1.3,
		"canvas_width": 200,
		"canvas_height": 100,
		"people": [{"pose_keypoints_2d": [100, 50, 0.9]}]
	}]`

	w := httptest.NewRecorder()
	testServer().handleExport(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/export", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string              `json:"status"`
		Frames []openpose.Document `json:"frames"`
		Count  int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Frames, 1)
	require.Len(t, resp.Frames[0].People, 1)

	kps := resp.Frames[0].People[0].PoseKeypoints2D
	require.Len(t, kps, 3)
	assert.Equal(t, 0.5, kps[0])
	assert.Equal(t, 0.5, kps[1])
	assert.Equal(t, 0.9, kps[2])
}

func TestHandleConvert(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleConvert(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/convert?width=64&height=64", strings.NewReader(scenarioDoc)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status   string            `json:"status"`
		Image    string            `json:"image"`
		Document openpose.Document `json:"document"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Document.People, 1)
	assert.Len(t, resp.Document.People[0].PoseKeypoints2D, 9)

	data, err := base64.StdEncoding.DecodeString(resp.Image)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestHandleConvertThumbnail(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleConvert(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/convert?width=100&height=100&thumb=50", strings.NewReader(scenarioDoc)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Thumbnail string `json:"thumbnail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.NotEmpty(t, resp.Thumbnail)

	data, err := base64.StdEncoding.DecodeString(resp.Thumbnail)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestHandleConvertRejectsZeroCanvas(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleConvert(w, httptest.NewRequest(http.MethodPost, "/lattice/pose/convert?width=0", strings.NewReader(scenarioDoc)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSkeleton(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handleSkeleton(w, httptest.NewRequest(http.MethodGet, "/lattice/pose/skeleton", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Keypoints []struct {
			Index  int    `json:"index"`
			Name   string `json:"name"`
			Region string `json:"region"`
			Color  []int  `json:"color"`
		} `json:"keypoints"`
		Bones []struct {
			A     int   `json:"a"`
			B     int   `json:"b"`
			Color []int `json:"color"`
		} `json:"bones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Keypoints, 18)
	require.Len(t, resp.Bones, 17)

	assert.Equal(t, "nose", resp.Keypoints[0].Name)
	assert.Equal(t, "head", resp.Keypoints[0].Region)
	assert.Equal(t, []int{1, 2}, []int{resp.Bones[0].A, resp.Bones[0].B})
	assert.Equal(t, []int{255, 0, 0}, resp.Bones[0].Color)
}

func TestHandlePreprocessors(t *testing.T) {
	w := httptest.NewRecorder()
	testServer().handlePreprocessors(w, httptest.NewRequest(http.MethodGet, "/lattice/preprocessors/list", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status        string `json:"status"`
		Preprocessors []struct {
			ID             string `json:"id"`
			NodeClass      string `json:"node_class"`
			EmitsKeypoints bool   `json:"emits_keypoints"`
		} `json:"preprocessors"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "dwpose", resp.Preprocessors[0].ID)
	assert.Equal(t, "OpenposePreprocessor", resp.Preprocessors[1].NodeClass)
}
