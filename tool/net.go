package tool

import "net"

// FirstLocalIPv4 returns a non-loopback IPv4 address of this host, or "" when
// none is available. Used for the network access URL in the startup banner and
// the QR endpoint.
func FirstLocalIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipnet.IP
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if ipv4 := ip.To4(); ipv4 != nil {
			return ipv4.String()
		}
	}
	return ""
}
