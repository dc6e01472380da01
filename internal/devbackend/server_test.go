package devbackend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*Server, *api.Client) {
	t.Helper()
	c := newCatalog(t)
	require.NoError(t, c.Seed())
	srv := NewServer(c, Options{})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, api.New(ts.URL)
}

func TestServer_CPUs(t *testing.T) {
	_, client := newTestBackend(t)

	cpus, err := client.ListCPUs(context.Background())
	require.NoError(t, err)
	require.Len(t, cpus, len(seedItems[hardware.KindCPU]))
	assert.Equal(t, "AMD", cpus[0].Brand)
}

func TestServer_Recommend(t *testing.T) {
	_, client := newTestBackend(t)

	recs, err := client.Recommend(context.Background(), hardware.RecommendRequest{
		CPUID:           1,
		PSUWattage:      650,
		Connectors:      []string{"8-pin"},
		MoboChipset:     "B550",
		MoboPCIeVersion: "4.0",
		Budget:          500,
		Strict:          true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.LessOrEqual(t, float64(r.Price), 500.0)
		assert.Contains(t, r.Tags, TagPSUOK)
	}

	_, err = client.Recommend(context.Background(), hardware.RecommendRequest{CPUID: 999, PSUWattage: 650})
	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestServer_AdminLogin(t *testing.T) {
	srv, client := newTestBackend(t)
	ctx := context.Background()

	res, err := client.AdminLogin(ctx, DefaultAdminEmail, "wrong")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid email or password", res.Message)

	res, err = client.VerifyOTP(ctx, DefaultAdminEmail, DefaultOTP)
	require.NoError(t, err)
	assert.False(t, res.Success, "otp without a prior login must fail")

	res, err = client.AdminLogin(ctx, DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = client.VerifyOTP(ctx, DefaultAdminEmail, "000000")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid OTP", res.Message)

	res, err = client.VerifyOTP(ctx, DefaultAdminEmail, DefaultOTP)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, srv.ValidToken(res.Token))
}

func TestServer_Catalog(t *testing.T) {
	_, client := newTestBackend(t)
	ctx := context.Background()

	before, err := client.ListCatalog(ctx, hardware.KindMotherboard)
	require.NoError(t, err)

	msg, err := client.AddCatalogItem(ctx, hardware.KindMotherboard, map[string]string{
		"name": "ASRock B650M", "chipset": "B650", "pcie_version": "5.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "motherboard added", msg)

	after, err := client.ListCatalog(ctx, hardware.KindMotherboard)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "ASRock B650M", after[len(after)-1]["name"])

	_, err = client.AddCatalogItem(ctx, hardware.KindMotherboard, map[string]string{"chipset": "B650"})
	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Contains(t, se.Message, "name is required")
}

func TestServer_UnknownKind(t *testing.T) {
	c := newCatalog(t)
	ts := httptest.NewServer(NewServer(c, Options{}).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/admin/get/ram")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
