// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/coffeechain/lotledgerd/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// the globals arg[0] (the file name) and config_directory (its
// absolute directory) are available to the script
func ParseConfigurationFile(fileName string, config interface{}) error {
	absoluteName, err := filepath.Abs(fileName)
	if nil != err {
		return err
	}

	return parse(config, func(L *lua.LState) error {

		// create the global "arg" table
		// arg[0] = config file
		arg := &lua.LTable{}
		arg.Insert(0, lua.LString(fileName))
		L.SetGlobal("arg", arg)
		L.SetGlobal("config_directory", lua.LString(filepath.Dir(absoluteName)))

		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - execute a Lua chunk held in memory
func ParseConfigurationString(chunk string, config interface{}) error {
	return parse(config, func(L *lua.LState) error {
		return L.DoString(chunk)
	})
}

func parse(config interface{}, execute func(*lua.LState) error) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// execute configuration
	if err := execute(L); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrMissingParameters
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
