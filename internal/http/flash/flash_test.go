package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/pkg/view"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "chocoluxe_flash", false)

	val, err := codec.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Added to cart."})
	require.NoError(t, err)

	got, err := codec.Decode(val)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, got.Kind)
	assert.Equal(t, "Added to cart.", got.Message)
}

func TestCodec_TamperedPayloadRejected(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "chocoluxe_flash", false)

	val, err := codec.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	parts := strings.SplitN(val, ".", 2)
	require.Len(t, parts, 2)
	_, err = codec.Decode("eyJrIjoiZm9yZ2VkIn0" + "." + parts[1])
	assert.Error(t, err)
}

func TestCodec_WrongSecretRejected(t *testing.T) {
	a := NewCodec([]byte("secret-a"), "chocoluxe_flash", false)
	b := NewCodec([]byte("secret-b"), "chocoluxe_flash", false)

	val, err := a.Encode(view.Flash{Kind: view.FlashError, Message: "nope"})
	require.NoError(t, err)

	_, err = b.Decode(val)
	assert.Error(t, err)
}

func TestCodec_GarbageRejected(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "chocoluxe_flash", false)
	_, err := codec.Decode("not-a-flash-cookie")
	assert.Error(t, err)
}
