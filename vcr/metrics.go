/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package vcr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdlaas/tdlaas-node/core"
)

var presentationVerifications = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: core.MetricsNamespace,
	Name:      "presentation_verifications_total",
	Help:      "Number of presentation verifications, by result (valid or the reason verification failed).",
}, []string{"result"})

var issuedCredentials = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: core.MetricsNamespace,
	Name:      "credentials_issued_total",
	Help:      "Number of issued credentials.",
})

func registerMetrics() error {
	for _, collector := range []prometheus.Collector{presentationVerifications, issuedCredentials} {
		if err := core.RegisterCollector(collector); err != nil {
			return err
		}
	}
	return nil
}
