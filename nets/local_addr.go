package nets

import "net"

// IsLocalAddr reports whether addr resolves to a loopback or private address.
// Local addresses are dialed directly, bypassing the proxy.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}

		if ip := net.ParseIP(host); ip != nil {
			return ip.IsLoopback() || ip.IsPrivate(), nil
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unknown hosts go through the proxy
			return false, nil
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true, nil
			}
		}

		return false, nil
	}
}
