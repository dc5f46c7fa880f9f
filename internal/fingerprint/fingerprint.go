package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/vvka-141/traceschema/pkg/schemaxml"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// NamespaceContextIdentity is the UUID v5 namespace for context identities.
var NamespaceContextIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("traceschema/context-identity/v1"))

type Fingerprint struct {
	Raw       string    `json:"raw,omitempty" yaml:"raw,omitempty"`
	Canonical string    `json:"canonical" yaml:"canonical"`
	ID        uuid.UUID `json:"id" yaml:"id"`
	Schemas   int       `json:"schemas" yaml:"schemas"`
}

// Digest returns the hex SHA-256 of content.
func Digest(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// IdentityOf derives the UUID v5 for a canonical digest.
func IdentityOf(canonical string) uuid.UUID {
	return uuid.NewSHA1(NamespaceContextIdentity, []byte(canonical))
}

// Of fingerprints an in-memory context. Raw is left empty.
func Of(ctx *traceschema.SchemaContext) (Fingerprint, error) {
	canonical, err := schemaxml.SerializeIndent(ctx, 0)
	if err != nil {
		return Fingerprint{}, err
	}
	digest := Digest([]byte(canonical))
	return Fingerprint{
		Canonical: digest,
		ID:        IdentityOf(digest),
		Schemas:   len(ctx.Declared()),
	}, nil
}

// OfDocument decodes data and fingerprints both the bytes and the result.
func OfDocument(data []byte, dec *schemaxml.Decoder) (Fingerprint, error) {
	if dec == nil {
		dec = schemaxml.NewDecoder()
	}
	ctx, err := dec.DeserializeBytes(data)
	if err != nil {
		return Fingerprint{}, err
	}
	fp, err := Of(ctx)
	if err != nil {
		return Fingerprint{}, err
	}
	fp.Raw = Digest(data)
	return fp, nil
}

// Equal reports whether two fingerprints describe the same schema content.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.Canonical == other.Canonical
}
