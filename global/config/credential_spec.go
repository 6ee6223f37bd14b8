package config

// CredentialType selects how auth material is resolved when dialing Bigtable.
type CredentialType int

const (
	// CredentialTypeDefault resolves credentials from well known locations,
	// such as the GCE metadata service or gcloud configuration.
	CredentialTypeDefault CredentialType = iota
	// CredentialTypeJSONFile reads a service account key from a JSON file.
	CredentialTypeJSONFile
	// CredentialTypeNone disables authentication. Emulator only.
	CredentialTypeNone
)

func (t CredentialType) String() string {
	switch t {
	case CredentialTypeDefault:
		return "default"
	case CredentialTypeJSONFile:
		return "json-file"
	case CredentialTypeNone:
		return "none"
	}
	return "unknown"
}

// CredentialSpec is an immutable description of the credential source for a
// connection. It carries no secret material itself.
type CredentialSpec struct {
	credType    CredentialType
	jsonKeyPath string
}

func DefaultCredentials() CredentialSpec {
	return CredentialSpec{credType: CredentialTypeDefault}
}

func JSONFileCredentials(path string) CredentialSpec {
	return CredentialSpec{credType: CredentialTypeJSONFile, jsonKeyPath: path}
}

func NoCredentials() CredentialSpec {
	return CredentialSpec{credType: CredentialTypeNone}
}

func (c CredentialSpec) Type() CredentialType { return c.credType }

func (c CredentialSpec) JSONKeyPath() string { return c.jsonKeyPath }
