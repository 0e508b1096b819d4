package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
)

func testVideoRequest(themes ...string) domain.VideoRequest {
	return domain.VideoRequest{
		Ticker:       "REQ",
		VisualThemes: themes,
		LogoURL:      "https://cdn.example/logo.png",
		Brief:        testBrief(),
		Tone:         testTone(),
		CallToAction: "Join $REQ today",
	}
}

func TestGenerateVideo_AllClipsStitched(t *testing.T) {
	var clipN atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/clips":
			n := clipN.Add(1)
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/clip" + string(rune('0'+n)) + ".mp4"})
		case "/v1/stitches":
			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Len(t, body["clip_urls"], 3)
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/launch.mp4"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gen := NewVideoGenerator(fastRenderClient(srv.URL), zap.NewNop(), WithVideoRetryPolicy(fastPolicy))
	result := gen.GenerateVideo(context.Background(), testVideoRequest("a", "b", "c"))

	assert.Equal(t, "https://cdn.example/launch.mp4", result.LaunchVideoURL)
	assert.Equal(t, 3, result.ClipsSucceeded)
	assert.Equal(t, 3, result.ClipsAttempted)
}

func TestGenerateVideo_PartialClipsStillStitch(t *testing.T) {
	var clipN atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/clips":
			var spec ClipSpec
			require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
			// The clip for the second theme always fails.
			if spec.Prompt[len(spec.Prompt)-1] == 'b' {
				http.Error(w, "clip failed", http.StatusInternalServerError)
				return
			}
			clipN.Add(1)
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/clip.mp4"})
		case "/v1/stitches":
			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Len(t, body["clip_urls"], 2)
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/launch.mp4"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gen := NewVideoGenerator(fastRenderClient(srv.URL), zap.NewNop(), WithVideoRetryPolicy(fastPolicy))
	result := gen.GenerateVideo(context.Background(), testVideoRequest("a", "b", "c"))

	assert.Equal(t, "https://cdn.example/launch.mp4", result.LaunchVideoURL)
	assert.Equal(t, 2, result.ClipsSucceeded)
	assert.Equal(t, 3, result.ClipsAttempted)
}

func TestGenerateVideo_SingleClipSkipsStitch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/clips":
			var spec ClipSpec
			require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
			if spec.Prompt[len(spec.Prompt)-1] != 'a' {
				http.Error(w, "clip failed", http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/only.mp4"})
		case "/v1/stitches":
			t.Error("stitch must not be called for a single clip")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gen := NewVideoGenerator(fastRenderClient(srv.URL), zap.NewNop(), WithVideoRetryPolicy(fastPolicy))
	result := gen.GenerateVideo(context.Background(), testVideoRequest("a", "b", "c"))

	assert.Equal(t, "https://cdn.example/only.mp4", result.LaunchVideoURL)
	assert.Equal(t, 1, result.ClipsSucceeded)
}

func TestGenerateVideo_AllClipsFailYieldsTextCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/clips":
			http.Error(w, "clip failed", http.StatusInternalServerError)
		case "/v1/textcards":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Join $REQ today", body["text"])
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/card.mp4"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gen := NewVideoGenerator(fastRenderClient(srv.URL), zap.NewNop(), WithVideoRetryPolicy(fastPolicy))
	result := gen.GenerateVideo(context.Background(), testVideoRequest("a", "b"))

	assert.Equal(t, "https://cdn.example/card.mp4", result.LaunchVideoURL)
	assert.Equal(t, 0, result.ClipsSucceeded)
	assert.Equal(t, 2, result.ClipsAttempted)
}

func TestGenerateVideo_TextCardFailureLeavesEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gen := NewVideoGenerator(fastRenderClient(srv.URL), zap.NewNop(), WithVideoRetryPolicy(fastPolicy))
	result := gen.GenerateVideo(context.Background(), testVideoRequest("a", "b"))

	assert.Empty(t, result.LaunchVideoURL)
	assert.Equal(t, 0, result.ClipsSucceeded)
}

func TestGenerateVideo_StitchFailureShipsFirstClip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/clips" {
			json.NewEncoder(w).Encode(submitResponse{URL: "https://cdn.example/clip.mp4"})
			return
		}
		http.Error(w, "stitcher down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := NewVideoGenerator(fastRenderClient(srv.URL), zap.NewNop(), WithVideoRetryPolicy(fastPolicy))
	result := gen.GenerateVideo(context.Background(), testVideoRequest("a", "b"))

	assert.Equal(t, "https://cdn.example/clip.mp4", result.LaunchVideoURL)
	assert.Equal(t, 2, result.ClipsSucceeded)
}

func TestClipSpecs_ThemeBounds(t *testing.T) {
	cases := []struct {
		themes []string
		want   int
	}{
		{nil, 2},
		{[]string{"a"}, 2},
		{[]string{"a", "b"}, 2},
		{[]string{"a", "b", "c"}, 3},
		{[]string{"a", "b", "c", "d", "e"}, 3},
	}
	for _, tc := range cases {
		specs := clipSpecs(testVideoRequest(tc.themes...))
		assert.Len(t, specs, tc.want)
	}
}
