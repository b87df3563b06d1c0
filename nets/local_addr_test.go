package nets

import (
	"testing"

	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/modes"
	"github.com/reusee/dscope"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, expected := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"10.1.2.3":        true,
			"192.168.0.1:443": true,
			"8.8.8.8:53":      false,
			"1.1.1.1":         false,
		} {
			yes, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != expected {
				t.Fatalf("%s: got %v", addr, yes)
			}
		}
	})
}

func TestProxyDisabledInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
	})
}

func TestProxyURL(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		dscope.Provide(ProxyAddr("socks://127.0.0.1:1080")),
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}
