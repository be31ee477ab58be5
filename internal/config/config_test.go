package config

import "testing"

func TestApplyDefaults_FillsZeroFields(t *testing.T) {
	c := &Config{}
	ApplyDefaults(c)

	if c.StoreDir == "" {
		t.Fatal("expected StoreDir to be filled in")
	}
	if c.RequestBatchTimeout <= 0 {
		t.Fatal("expected RequestBatchTimeout to be filled in")
	}
	if c.RequestBatchRetryNodes <= 0 {
		t.Fatal("expected RequestBatchRetryNodes to be filled in")
	}
}

func TestApplyDefaults_PreservesSetFields(t *testing.T) {
	c := &Config{StoreDir: "/custom/path", RequestBatchRetryNodes: 9}
	ApplyDefaults(c)

	if c.StoreDir != "/custom/path" {
		t.Fatalf("StoreDir = %q, want it preserved", c.StoreDir)
	}
	if c.RequestBatchRetryNodes != 9 {
		t.Fatalf("RequestBatchRetryNodes = %d, want it preserved", c.RequestBatchRetryNodes)
	}
}

func TestDefault_EnablesNetworkAndFetcher(t *testing.T) {
	c := Default()
	if !c.EnableNetwork || !c.EnableFetcher {
		t.Fatal("expected Default() to enable network and fetcher")
	}
}
