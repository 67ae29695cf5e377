package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-jwks-url signing-key discovery URL
//	-cors-origin allowed CORS origin
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-images-endpoint blob-store endpoint
//	-images-bucket blob-store bucket for superhero images
//	-images-access-key-id blob-store access key id
//	-images-secret-access-key blob-store secret access key
//	-images-use-ssl use TLS for blob-store connections
//	-upload-url-expiration presigned upload URL validity (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var jwksURL string
	var corsOrigin string
	var requestTimeout time.Duration
	var imagesEndpoint string
	var imagesBucket string
	var imagesAccessKeyID string
	var imagesSecretAccessKey string
	var imagesUseSSL bool
	var uploadURLExpiration time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&jwksURL, "jwks-url", "", "Signing-key discovery URL")
	flag.StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origin")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&imagesEndpoint, "images-endpoint", "", "Blob-store endpoint")
	flag.StringVar(&imagesBucket, "images-bucket", "", "Blob-store bucket for superhero images")
	flag.StringVar(&imagesAccessKeyID, "images-access-key-id", "", "Blob-store access key id")
	flag.StringVar(&imagesSecretAccessKey, "images-secret-access-key", "", "Blob-store secret access key")
	flag.BoolVar(&imagesUseSSL, "images-use-ssl", false, "Use TLS for blob-store connections")
	flag.DurationVar(&uploadURLExpiration, "upload-url-expiration", 0, "Presigned upload URL validity (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			JWKSURL: jwksURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Images: Images{
				Endpoint:            imagesEndpoint,
				AccessKeyID:         imagesAccessKeyID,
				SecretAccessKey:     imagesSecretAccessKey,
				Bucket:              imagesBucket,
				UseSSL:              imagesUseSSL,
				UploadURLExpiration: uploadURLExpiration,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigin:     corsOrigin,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
