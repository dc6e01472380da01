package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://example.com/")
	assert.Equal(t, "http://example.com", c.BaseURL())
}

func TestListCPUs(t *testing.T) {
	var gotID string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, PathCPUs, r.URL.Path)
		gotID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Ryzen 5 5600X","brand":"AMD","cores":6,"tdp":"65"}]`))
	})

	cpus, err := c.ListCPUs(context.Background())
	require.NoError(t, err)
	require.Len(t, cpus, 1)
	assert.Equal(t, 1, cpus[0].ID)
	assert.Equal(t, "AMD", cpus[0].Brand)
	assert.Equal(t, hardware.Number(65), cpus[0].TDP)

	_, err = uuid.Parse(gotID)
	assert.NoError(t, err, "request id should be a uuid")
}

func TestListCPUs_Status(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
	})

	_, err := c.ListCPUs(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "db down", se.Message)
}

func TestListCPUs_Malformed(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>nope</html>`))
	})

	_, err := c.ListCPUs(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).ListCPUs(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestContextCancelled(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListCPUs(ctx)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestRecommend(t *testing.T) {
	var body map[string]any
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathRecommend, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`[{"name":"RTX 4060","vram":8,"tdp":115,"score":"91.5","price":299,"image":"rtx-4060","tags":["No Bottleneck"]}]`))
	})

	recs, err := c.Recommend(context.Background(), hardware.RecommendRequest{
		CPUID:           3,
		PSUWattage:      650,
		Connectors:      []string{"8-pin"},
		MoboChipset:     "B550",
		MoboPCIeVersion: "4.0",
		Budget:          400,
		Strict:          true,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "RTX 4060", recs[0].Name)
	assert.Equal(t, hardware.Text("8"), recs[0].VRAM)
	assert.Equal(t, hardware.Number(91.5), recs[0].Score)
	assert.Equal(t, []string{"No Bottleneck"}, recs[0].Tags)

	assert.EqualValues(t, 3, body["cpuId"])
	assert.EqualValues(t, 650, body["psuWattage"])
	assert.Equal(t, []any{"8-pin"}, body["connectors"])
	assert.Equal(t, "B550", body["moboChipset"])
	assert.Equal(t, "4.0", body["moboPcieVersion"])
	assert.EqualValues(t, 400, body["budget"])
	assert.Equal(t, true, body["strict"])
}

func TestRecommend_NotAnArray(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "no results"})
	})

	_, err := c.Recommend(context.Background(), hardware.RecommendRequest{})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    *LoginResult
		wantErr bool
	}{
		{
			name:   "accepted",
			status: http.StatusOK,
			body:   `{"success":true}`,
			want:   &LoginResult{Success: true},
		},
		{
			name:   "rejected with message",
			status: http.StatusOK,
			body:   `{"success":false,"message":"Unknown admin"}`,
			want:   &LoginResult{Message: "Unknown admin"},
		},
		{
			name:   "unauthorized body is still a result",
			status: http.StatusUnauthorized,
			body:   `{"success":true,"message":"bad password"}`,
			want:   &LoginResult{Message: "bad password"},
		},
		{
			name:    "unauthorized without json",
			status:  http.StatusUnauthorized,
			body:    `denied`,
			wantErr: true,
		},
		{
			name:    "ok without json",
			status:  http.StatusOK,
			body:    `denied`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				var in map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, "admin@example.com", in["email"])
				assert.Equal(t, "hunter2", in["password"])
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.AdminLogin(context.Background(), "admin@example.com", "hunter2")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathVerifyOTP, r.URL.Path)
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["otp"] != "123456" {
			writeJSON(w, http.StatusOK, LoginResult{Message: "Invalid OTP"})
			return
		}
		writeJSON(w, http.StatusOK, LoginResult{Success: true, Token: "tok-1"})
	})

	got, err := c.VerifyOTP(context.Background(), "a@b.c", "123456")
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "tok-1", got.Token)

	got, err = c.VerifyOTP(context.Background(), "a@b.c", "000000")
	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, "Invalid OTP", got.Message)
}

func TestListCatalog(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/get/psu", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"wattage":650}]`))
	})

	items, err := c.ListCatalog(context.Background(), hardware.KindPSU)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 650, items[0]["wattage"])
}

func TestAddCatalogItem(t *testing.T) {
	var got map[string]string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/add/motherboard", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, map[string]string{"message": "created"})
	})

	msg, err := c.AddCatalogItem(context.Background(), hardware.KindMotherboard, map[string]string{
		"name":         "MSI B550",
		"chipset":      "B550",
		"pcie_version": "4.0",
		"wattage":      "650",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", msg)
	assert.Equal(t, map[string]string{"name": "MSI B550", "chipset": "B550", "pcie_version": "4.0"}, got)
}

func TestAddCatalogItem_Rejected(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "name is required"})
	})

	_, err := c.AddCatalogItem(context.Background(), hardware.KindGPU, nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, "name is required", se.Message)
}
