package localauth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/types"
)

func mustIdToken(t *testing.T, value string) *types.IdToken {
	t.Helper()
	token, err := types.NewIdToken(value)
	require.NoError(t, err)
	return token
}

func mustIdTagInfo(t *testing.T) *types.IdTagInfo {
	t.Helper()
	info, err := types.NewIdTagInfo(types.AuthorizationStatusAccepted)
	require.NoError(t, err)
	return info
}

func TestProfile(t *testing.T) {
	assert.Equal(t, "LocalAuthListManagement", Profile.Name)
	assert.Len(t, Profile.Features(), 2)
}

func TestGetLocalListVersion(t *testing.T) {
	assert.True(t, NewGetLocalListVersionRequest().Validate())

	_, err := NewGetLocalListVersionResponse(-2)
	require.Error(t, err)
	response, err := NewGetLocalListVersionResponse(-1)
	require.NoError(t, err)
	assert.Equal(t, -1, response.ListVersion())

	response, err = NewGetLocalListVersionResponse(0)
	require.NoError(t, err)
	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Equal(t, `{"listVersion":0}`, string(encoded))

	assert.Equal(t, []string{"listVersion"}, (&GetLocalListVersionResponse{}).Violations().Fields())
}

func TestSendLocalListFullRequiresIdTagInfo(t *testing.T) {
	request, err := NewSendLocalListRequest(4, UpdateTypeFull)
	require.NoError(t, err)
	request.SetLocalAuthorizationList([]*AuthorizationData{
		NewAuthorizationData(mustIdToken(t, "A"), mustIdTagInfo(t)),
		NewAuthorizationData(mustIdToken(t, "B"), nil),
	})
	assert.Equal(t, []string{"localAuthorizationList[1].idTagInfo"}, request.Violations().Fields())

	require.NoError(t, request.SetUpdateType(UpdateTypeDifferential))
	assert.True(t, request.Validate())
}

func TestSendLocalListRequest(t *testing.T) {
	_, err := NewSendLocalListRequest(-1, UpdateTypeFull)
	require.Error(t, err)
	_, err = NewSendLocalListRequest(1, "Partial")
	require.Error(t, err)

	request, err := NewSendLocalListRequest(1, UpdateTypeDifferential)
	require.NoError(t, err)
	request.SetLocalAuthorizationList([]*AuthorizationData{NewAuthorizationData(nil, nil)})
	assert.Equal(t, []string{"localAuthorizationList[0].idTag"}, request.Violations().Fields())

	assert.Equal(t, []string{"listVersion", "updateType"}, (&SendLocalListRequest{}).Violations().Fields())
}

func TestSendLocalListJSON(t *testing.T) {
	data := []byte(`{"listVersion":2,"localAuthorizationList":[{"idTag":"A","idTagInfo":{"status":"Blocked"}}],"updateType":"Full"}`)
	var request SendLocalListRequest
	require.NoError(t, json.Unmarshal(data, &request))
	assert.True(t, request.Validate())
	require.Len(t, request.LocalAuthorizationList(), 1)
	assert.Equal(t, "A", request.LocalAuthorizationList()[0].IdTag().Value())

	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(encoded))

	response, err := NewSendLocalListResponse(UpdateStatusVersionMismatch)
	require.NoError(t, err)
	assert.True(t, response.Validate())
}
