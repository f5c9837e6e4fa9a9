package configs

// GrpcConfig configures the gRPC health endpoint exposed next to the web server.
type GrpcConfig struct {
	Port string `env:"GRPC_PORT" envDefault:"9090"`
}
