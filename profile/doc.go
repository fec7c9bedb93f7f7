// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package profile reads whole connection profiles, documents mapping
// option names to option values, from JSON or YAML sources.
//
// A profile document looks like:
//
//	{
//	    "http:connectionTimeout": "PT30S",
//	    "http:tlsVersions": ["V_1_2", "V_1_3"]
//	}
//
// Sources are merged in order with Read, resolved into options through
// a vfsopt registry with Profile.Resolve and written onto a
// connect.Options with Apply:
//
//	p, _ := profile.Read(profile.FromJson(f))
//	opts, _ := p.Resolve(vfsopt.Default())
//	err := profile.Apply(ctx, connect.NewOptions(), opts...)
package profile
