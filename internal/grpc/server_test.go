package grpc

import (
	"testing"

	"github.com/csaide/riftdb/internal/store"
)

func TestNewServerRegistersAllServices(t *testing.T) {
	srv := NewServer(&Config{
		Registry: newTestRegistry(),
		Store:    store.NewHashStore(),
	})
	defer srv.Stop()

	info := srv.grpcServer.GetServiceInfo()
	for _, name := range []string{
		"rift.v1.PubSub",
		"rift.v1.Topics",
		"rift.v1.Subscriptions",
		"rift.v1.KV",
		"grpc.health.v1.Health",
	} {
		if _, ok := info[name]; !ok {
			t.Fatalf("expected service %q to be registered, got %v", name, info)
		}
	}
}

func TestServerStartStop(t *testing.T) {
	srv := NewServer(&Config{
		Registry: newTestRegistry(),
		Store:    store.NewHashStore(),
	})

	if err := srv.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if srv.listener == nil {
		t.Fatal("expected a bound listener")
	}
	srv.Stop()
}
