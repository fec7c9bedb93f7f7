// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package profile_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/profile"

	_ "github.com/z5labs/vfsopt/httpopt"
)

func ExampleRead() {
	src := strings.NewReader(`{
		"http:connectionTimeout": "PT30S",
		"http:userAgent": "vfs-client/1.0"
	}`)

	p, err := profile.Read(profile.FromJson(src))
	if err != nil {
		fmt.Println(err)
		return
	}

	opts, err := p.Resolve(vfsopt.Default())
	if err != nil {
		fmt.Println(err)
		return
	}

	target := connect.NewOptions()
	err = profile.Apply(context.Background(), target, opts...)
	if err != nil {
		fmt.Println(err)
		return
	}

	d, _ := target.ConnectionTimeout()
	ua, _ := target.UserAgent()
	fmt.Println(d, ua)
	// Output: 30s vfs-client/1.0
}
