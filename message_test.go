package iso8583

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageSetGetUnset(t *testing.T) {
	msg := authSchema(t).New()

	_, ok := msg.Get("de2")
	assert.False(t, ok)

	require.NoError(t, msg.Set("de2", "4111"))
	v, ok := msg.Get("de2")
	assert.True(t, ok)
	assert.Equal(t, "4111", v)

	// An empty value is still present.
	require.NoError(t, msg.Set("de5", ""))
	assert.True(t, msg.Has("de5"))

	require.NoError(t, msg.Unset("de2"))
	assert.False(t, msg.Has("de2"))

	err := msg.Set("de99", "x")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "de99", fe.Field)

	assert.ErrorIs(t, msg.Unset("nope"), ErrFieldNotFound)
	assert.False(t, msg.Has("nope"))
}

func TestMessageMTI(t *testing.T) {
	msg := authSchema(t).New()
	_, ok := msg.MTI()
	assert.False(t, ok)

	require.NoError(t, msg.Set("mti", "0200"))
	mti, ok := msg.MTI()
	assert.True(t, ok)
	assert.Equal(t, "0200", mti)

	noMTI := MustSchema("bare",
		Field{Name: "b1", Codec: Bitmap(), Role: RolePrimary},
		Field{Name: "a", Codec: FixedString(2)},
	)
	_, ok = noMTI.New().MTI()
	assert.False(t, ok)
}

func TestMessageToMap(t *testing.T) {
	msg, err := NewMessage(authSchema(t), WithValues(map[string]string{
		"mti": "0200",
		"de2": "4111111111111111",
	}))
	require.NoError(t, err)

	m := msg.ToMap(false)
	assert.Len(t, m, 2)
	require.NotNil(t, m["de2"])
	assert.Equal(t, "4111111111111111", *m["de2"])

	all := msg.ToMap(true)
	assert.Len(t, all, authSchema(t).Len())
	v, ok := all["de3"]
	assert.True(t, ok)
	assert.Nil(t, v)

	// The map holds copies.
	*m["mti"] = "9999"
	mti, _ := msg.MTI()
	assert.Equal(t, "0200", mti)

	raw, err := json.Marshal(all)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"de3":null`)
	assert.Contains(t, string(raw), `"mti":"0200"`)
}

func TestMessageDescribe(t *testing.T) {
	msg, err := Parse(TietoNative, tietoAuthorization)
	require.NoError(t, err)

	var names []string
	for fv := range msg.Describe(false) {
		assert.True(t, fv.Present)
		names = append(names, fv.Name)
	}
	assert.Equal(t, []string{"mti", "b1", "de1", "de2", "de3"}, names[:5])
	assert.Equal(t, "de100", names[len(names)-1])

	// A second pass sees the same rows.
	var again []string
	for fv := range msg.Describe(false) {
		again = append(again, fv.Name)
	}
	assert.Equal(t, names, again)

	count := 0
	for fv := range msg.Describe(true) {
		if fv.Name == "de5" {
			assert.False(t, fv.Present)
			assert.Equal(t, "Amount, settlement", fv.Label)
		}
		count++
	}
	assert.Equal(t, TietoNative.Len(), count)

	// Breaking out early stops the walk.
	seen := 0
	for range msg.Describe(true) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestMessageClone(t *testing.T) {
	msg, err := Parse(TietoNative, tietoAuthorization)
	require.NoError(t, err)

	clone := msg.Clone()
	require.NoError(t, clone.Set("de2", "4000000000000002"))
	require.NoError(t, clone.Unset("de93"))

	assert.Equal(t, "5430720000000002", mustGet(t, msg, "de2"))
	assert.True(t, msg.Has("de93"))
	assert.Same(t, msg.Schema(), clone.Schema())
}

func TestCreateResponse(t *testing.T) {
	tests := []struct {
		request  string
		response string
	}{
		{"1100", "1110"},
		{"0200", "0210"},
		{"0220", "0230"},
		{"0800", "0810"},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			msg, err := NewMessage(TietoNative, WithValue("mti", tt.request), WithValue("de11", "000001"))
			require.NoError(t, err)

			res, err := msg.CreateResponse()
			require.NoError(t, err)
			mti, _ := res.MTI()
			assert.Equal(t, tt.response, mti)
			assert.Equal(t, "000001", mustGet(t, res, "de11"))

			orig, _ := msg.MTI()
			assert.Equal(t, tt.request, orig)
		})
	}

	for _, mti := range []string{"1110", "0210", "02X0", "110"} {
		msg, err := NewMessage(TietoNative, WithValue("mti", mti))
		require.NoError(t, err)
		_, err = msg.CreateResponse()
		assert.ErrorIs(t, err, ErrInvalidMTI, mti)
	}

	_, err := TietoNative.New().CreateResponse()
	assert.ErrorIs(t, err, ErrInvalidMTI)
}

func TestNewMessageOptionError(t *testing.T) {
	msg, err := NewMessage(TietoNative, WithValue("mti", "0200"), WithValue("de999", "x"))
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestMessageZerologObject(t *testing.T) {
	msg, err := NewMessage(TietoNative, WithValues(map[string]string{
		"mti": "0800",
		"de7": "20240101120000",
	}))
	require.NoError(t, err)
	require.NoError(t, msg.Set("b1", "ignored"))

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("msg", msg).Msg("composed")

	var entry struct {
		Msg struct {
			Schema string            `json:"schema"`
			Fields map[string]string `json:"fields"`
		} `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tieto-native", entry.Msg.Schema)
	assert.Equal(t, map[string]string{"mti": "0800", "de7": "20240101120000"}, entry.Msg.Fields)
}

func TestMessageLogValue(t *testing.T) {
	msg, err := NewMessage(TietoNative, WithValue("mti", "0800"), WithValue("de11", "000001"))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("parsed", "message", msg)

	assert.Contains(t, buf.String(), `"schema":"tieto-native"`)
	assert.Contains(t, buf.String(), `"de11":"000001"`)
}
